package model

import "time"

type Certificate struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ParticipantID int64      `gorm:"not null;uniqueIndex" json:"participant_id"`
	Path          string     `gorm:"size:1024;not null" json:"path"`
	Sent          bool       `gorm:"not null;default:false" json:"sent"`
	SentAt        *time.Time `json:"sent_at"`
	CreatedAt     time.Time  `json:"created_at"`

	Participant *Participant `gorm:"constraint:OnDelete:CASCADE;" json:"participant,omitempty"`
}

type CertificateTemplate struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	FileURL   string    `gorm:"size:1024;not null" json:"file_url"`
	FileType  string    `gorm:"size:100" json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}
