package fileuploadmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// MockFileUploadRepository records created uploads unless CreateFunc is set.
type MockFileUploadRepository struct {
	CreateFunc       func(upload *model.FileUpload) error
	GetByRelatedFunc func(uploadType string, relatedId int64) ([]*model.FileUpload, error)

	Created []*model.FileUpload
}

var _ IFileUploadRepository = (*MockFileUploadRepository)(nil)

func NewMockFileUploadRepository() *MockFileUploadRepository {
	return &MockFileUploadRepository{}
}

func (m *MockFileUploadRepository) Create(upload *model.FileUpload) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(upload)
	}
	m.Created = append(m.Created, upload)
	return nil
}

func (m *MockFileUploadRepository) GetByRelated(uploadType string, relatedId int64) ([]*model.FileUpload, error) {
	if m.GetByRelatedFunc != nil {
		return m.GetByRelatedFunc(uploadType, relatedId)
	}
	return nil, nil
}
