package participantmodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
	"gorm.io/gorm"
)

// ErrTicketAlreadyUsed is returned when a registration races another one for the same ticket.
var ErrTicketAlreadyUsed = errors.New("ticket has already been used")

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Register stores the participant and flips the ticket to verified in one transaction.
// The ticket update is conditional so two concurrent registrations cannot both win.
func (r *ParticipantRepository) Register(participant *model.Participant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Ticket{}).
			Where("id = ? AND is_verified = ?", participant.TicketID, false).
			Update("is_verified", true)
		if result.Error != nil {
			slog.Error("ParticipantModel Register ticket update failed", "error", result.Error, "ticket_id", participant.TicketID)
			return result.Error
		}
		if result.RowsAffected != 1 {
			slog.Warn("ParticipantModel Register ticket already used", "ticket_id", participant.TicketID)
			return ErrTicketAlreadyUsed
		}

		if err := tx.Create(participant).Error; err != nil {
			slog.Error("ParticipantModel Register insert failed", "error", err, "ticket_id", participant.TicketID)
			return err
		}
		return nil
	})
}

func (r *ParticipantRepository) GetAll() ([]*model.Participant, error) {
	var participants []*model.Participant
	err := r.db.Preload("Ticket.Event").Preload("Certificate").
		Order("registered_at DESC").
		Find(&participants).Error
	if err != nil {
		slog.Error("ParticipantModel GetAll", "error", err)
		return nil, err
	}
	return participants, nil
}

// GetByEvent returns the participants registered on the event's tickets.
func (r *ParticipantRepository) GetByEvent(eventId int64) ([]*model.Participant, error) {
	var participants []*model.Participant
	err := r.db.Preload("Ticket").
		Joins("JOIN tickets ON tickets.id = participants.ticket_id").
		Where("tickets.event_id = ?", eventId).
		Order("participants.registered_at ASC").
		Find(&participants).Error
	if err != nil {
		slog.Error("ParticipantModel GetByEvent", "error", err, "event_id", eventId)
		return nil, err
	}
	return participants, nil
}

func (r *ParticipantRepository) GetById(id int64) (*model.Participant, error) {
	var participant model.Participant
	err := r.db.Preload("Ticket.Event").Preload("Certificate").Where("id = ?", id).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("ParticipantModel GetById", "error", err, "id", id)
		return nil, err
	}
	return &participant, nil
}

func (r *ParticipantRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Participant{}).Count(&count).Error; err != nil {
		slog.Error("ParticipantModel Count", "error", err)
		return 0, err
	}
	return count, nil
}

// CountByEvent returns registrations per event id.
func (r *ParticipantRepository) CountByEvent() (map[int64]int64, error) {
	var rows []struct {
		EventID int64
		Count   int64
	}
	err := r.db.Model(&model.Participant{}).
		Select("tickets.event_id AS event_id, COUNT(participants.id) AS count").
		Joins("JOIN tickets ON tickets.id = participants.ticket_id").
		Group("tickets.event_id").
		Scan(&rows).Error
	if err != nil {
		slog.Error("ParticipantModel CountByEvent", "error", err)
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.EventID] = row.Count
	}
	return counts, nil
}
