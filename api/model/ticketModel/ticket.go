package ticketmodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// GetByEvent returns the event's tickets in issue order.
func (r *TicketRepository) GetByEvent(eventId int64) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	err := r.db.Where("event_id = ?", eventId).Order("id ASC").Find(&tickets).Error
	if err != nil {
		slog.Error("TicketModel GetByEvent", "error", err, "event_id", eventId)
		return nil, err
	}
	return tickets, nil
}

// GetByToken returns the ticket with its event, or nil when the token is unknown.
func (r *TicketRepository) GetByToken(token string) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.Preload("Event").Where("token = ?", token).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("TicketModel GetByToken", "error", err, "token", token)
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) GetAll() ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	if err := r.db.Order("id ASC").Find(&tickets).Error; err != nil {
		slog.Error("TicketModel GetAll", "error", err)
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) UpdateQrCodeURL(id int64, url string) error {
	err := r.db.Model(&model.Ticket{}).Where("id = ?", id).Update("qr_code_url", url).Error
	if err != nil {
		slog.Error("TicketModel UpdateQrCodeURL", "error", err, "id", id)
		return err
	}
	return nil
}

func (r *TicketRepository) CountVerified() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Ticket{}).Where("is_verified = ?", true).Count(&count).Error; err != nil {
		slog.Error("TicketModel CountVerified", "error", err)
		return 0, err
	}
	return count, nil
}

func (r *TicketRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Ticket{}).Count(&count).Error; err != nil {
		slog.Error("TicketModel Count", "error", err)
		return 0, err
	}
	return count, nil
}
