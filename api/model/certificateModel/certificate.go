package certificatemodel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Create(certificate *model.Certificate) error {
	if err := r.db.Create(certificate).Error; err != nil {
		slog.Error("CertificateModel Create", "error", err, "participant_id", certificate.ParticipantID)
		return err
	}
	return nil
}

func (r *CertificateRepository) GetAll() ([]*model.Certificate, error) {
	var certificates []*model.Certificate
	err := r.db.Preload("Participant.Ticket.Event").Order("created_at DESC").Find(&certificates).Error
	if err != nil {
		slog.Error("CertificateModel GetAll", "error", err)
		return nil, err
	}
	return certificates, nil
}

// GetById returns the certificate with its participant, ticket and event, or nil when missing.
func (r *CertificateRepository) GetById(id int64) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.db.Preload("Participant.Ticket.Event").Where("id = ?", id).First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("CertificateModel GetById", "error", err, "id", id)
		return nil, err
	}
	return &certificate, nil
}

func (r *CertificateRepository) MarkSent(id int64, sentAt time.Time) error {
	result := r.db.Model(&model.Certificate{}).Where("id = ?", id).Updates(map[string]any{
		"sent":    true,
		"sent_at": sentAt,
	})
	if result.Error != nil {
		slog.Error("CertificateModel MarkSent", "error", result.Error, "id", id)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CertificateRepository) CreateTemplate(template *model.CertificateTemplate) error {
	if err := r.db.Create(template).Error; err != nil {
		slog.Error("CertificateModel CreateTemplate", "error", err, "name", template.Name)
		return err
	}
	return nil
}

func (r *CertificateRepository) GetTemplates() ([]*model.CertificateTemplate, error) {
	var templates []*model.CertificateTemplate
	if err := r.db.Order("created_at DESC").Find(&templates).Error; err != nil {
		slog.Error("CertificateModel GetTemplates", "error", err)
		return nil, err
	}
	return templates, nil
}
