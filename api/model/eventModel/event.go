package eventmodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
	"gorm.io/gorm"
)

// EventRepository handles event persistence. Ticket rows are written with
// their event so an event never exists without its quota of tickets.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateWithTickets inserts the event and its tickets in one transaction.
func (r *EventRepository) CreateWithTickets(event *model.Event, tickets []*model.Ticket) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			slog.Error("EventModel CreateWithTickets event insert failed", "error", err, "slug", event.Slug)
			return err
		}

		if len(tickets) == 0 {
			return nil
		}

		for _, ticket := range tickets {
			ticket.EventID = event.ID
		}
		if err := tx.CreateInBatches(tickets, 500).Error; err != nil {
			slog.Error("EventModel CreateWithTickets ticket insert failed", "error", err, "event_id", event.ID, "count", len(tickets))
			return err
		}
		return nil
	})
}

func (r *EventRepository) GetAllWithStats() ([]*model.EventWithStats, error) {
	var events []*model.EventWithStats

	err := r.db.Model(&model.Event{}).
		Select("events.*, COUNT(tickets.id) AS total_tickets, COUNT(CASE WHEN tickets.is_verified THEN 1 END) AS verified_tickets").
		Joins("LEFT JOIN tickets ON tickets.event_id = events.id").
		Group("events.id").
		Order("events.created_at DESC").
		Scan(&events).Error

	if err != nil {
		slog.Error("EventModel GetAllWithStats", "error", err)
		return nil, err
	}

	for _, event := range events {
		event.AvailableTickets = event.TotalTickets - event.VerifiedTickets
	}
	return events, nil
}

func (r *EventRepository) GetById(id int64) (*model.Event, error) {
	var event model.Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("EventModel GetById", "error", err, "id", id)
		return nil, err
	}
	return &event, nil
}

// IsSlugTaken reports whether another event already uses slug. Pass excludeId 0 when creating.
func (r *EventRepository) IsSlugTaken(slug string, excludeId int64) (bool, error) {
	var count int64
	query := r.db.Model(&model.Event{}).Where("slug = ?", slug)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		slog.Error("EventModel IsSlugTaken", "error", err, "slug", slug)
		return false, err
	}
	return count > 0, nil
}

func (r *EventRepository) Update(event *model.Event) error {
	if err := r.db.Save(event).Error; err != nil {
		slog.Error("EventModel Update", "error", err, "id", event.ID)
		return err
	}
	return nil
}

// Delete removes the event together with its tickets, participants and certificates.
func (r *EventRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ticketIds := tx.Model(&model.Ticket{}).Select("id").Where("event_id = ?", id)
		participantIds := tx.Model(&model.Participant{}).Select("id").Where("ticket_id IN (?)", ticketIds)

		if err := tx.Where("participant_id IN (?)", participantIds).Delete(&model.Certificate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ticket_id IN (?)", ticketIds).Delete(&model.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Ticket{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Event{}, id)
		if result.Error != nil {
			slog.Error("EventModel Delete", "error", result.Error, "id", id)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
