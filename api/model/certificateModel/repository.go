package certificatemodel

import (
	"time"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// ICertificateRepository defines the interface for certificate repository operations
type ICertificateRepository interface {
	Create(certificate *model.Certificate) error
	GetAll() ([]*model.Certificate, error)
	GetById(id int64) (*model.Certificate, error)
	MarkSent(id int64, sentAt time.Time) error
	CreateTemplate(template *model.CertificateTemplate) error
	GetTemplates() ([]*model.CertificateTemplate, error)
}

var _ ICertificateRepository = (*CertificateRepository)(nil)
