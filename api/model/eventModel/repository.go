package eventmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// IEventRepository defines the interface for event repository operations
type IEventRepository interface {
	CreateWithTickets(event *model.Event, tickets []*model.Ticket) error
	GetAllWithStats() ([]*model.EventWithStats, error)
	GetById(id int64) (*model.Event, error)
	IsSlugTaken(slug string, excludeId int64) (bool, error)
	Update(event *model.Event) error
	Delete(id int64) error
}

// Ensure EventRepository implements IEventRepository
var _ IEventRepository = (*EventRepository)(nil)
