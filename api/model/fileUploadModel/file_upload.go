package fileuploadmodel

import (
	"log/slog"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
	"gorm.io/gorm"
)

type FileUploadRepository struct {
	db *gorm.DB
}

func NewFileUploadRepository(db *gorm.DB) *FileUploadRepository {
	return &FileUploadRepository{db: db}
}

func (r *FileUploadRepository) Create(upload *model.FileUpload) error {
	if err := r.db.Create(upload).Error; err != nil {
		slog.Error("FileUploadModel Create", "error", err, "file_path", upload.FilePath)
		return err
	}
	return nil
}

// GetByRelated lists uploads of one type attached to a record, newest first.
func (r *FileUploadRepository) GetByRelated(uploadType string, relatedId int64) ([]*model.FileUpload, error) {
	var uploads []*model.FileUpload
	err := r.db.Where("upload_type = ? AND related_id = ?", uploadType, relatedId).
		Order("created_at DESC").
		Find(&uploads).Error
	if err != nil {
		slog.Error("FileUploadModel GetByRelated", "error", err, "upload_type", uploadType, "related_id", relatedId)
		return nil, err
	}
	return uploads, nil
}
