package model

import "time"

const (
	UploadTypeTicketDesign        = "ticket_design"
	UploadTypeCertificateTemplate = "certificate_template"
)

// FileUpload tracks every object the API puts into the object store on a user's behalf.
type FileUpload struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255" json:"original_name"`
	FilePath     string    `gorm:"size:1024;not null" json:"file_path"`
	FileSize     int64     `json:"file_size"`
	FileType     string    `gorm:"size:100" json:"file_type"`
	UploadType   string    `gorm:"size:50;not null;index" json:"upload_type"`
	RelatedID    *int64    `gorm:"index" json:"related_id"`
	CreatedAt    time.Time `json:"created_at"`
}
