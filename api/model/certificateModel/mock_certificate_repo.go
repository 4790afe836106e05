package certificatemodel

import (
	"time"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	CreateFunc         func(certificate *model.Certificate) error
	GetAllFunc         func() ([]*model.Certificate, error)
	GetByIdFunc        func(id int64) (*model.Certificate, error)
	MarkSentFunc       func(id int64, sentAt time.Time) error
	CreateTemplateFunc func(template *model.CertificateTemplate) error
	GetTemplatesFunc   func() ([]*model.CertificateTemplate, error)
}

var _ ICertificateRepository = (*MockCertificateRepository)(nil)

func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) Create(certificate *model.Certificate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(certificate)
	}
	return nil
}

func (m *MockCertificateRepository) GetAll() ([]*model.Certificate, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetById(id int64) (*model.Certificate, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockCertificateRepository) MarkSent(id int64, sentAt time.Time) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(id, sentAt)
	}
	return nil
}

func (m *MockCertificateRepository) CreateTemplate(template *model.CertificateTemplate) error {
	if m.CreateTemplateFunc != nil {
		return m.CreateTemplateFunc(template)
	}
	return nil
}

func (m *MockCertificateRepository) GetTemplates() ([]*model.CertificateTemplate, error) {
	if m.GetTemplatesFunc != nil {
		return m.GetTemplatesFunc()
	}
	return nil, nil
}
