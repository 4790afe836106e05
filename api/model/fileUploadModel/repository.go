package fileuploadmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// IFileUploadRepository defines the interface for upload bookkeeping
type IFileUploadRepository interface {
	Create(upload *model.FileUpload) error
	GetByRelated(uploadType string, relatedId int64) ([]*model.FileUpload, error)
}

var _ IFileUploadRepository = (*FileUploadRepository)(nil)
