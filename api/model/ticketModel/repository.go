package ticketmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// ITicketRepository defines the interface for ticket repository operations
type ITicketRepository interface {
	GetByEvent(eventId int64) ([]*model.Ticket, error)
	GetByToken(token string) (*model.Ticket, error)
	GetAll() ([]*model.Ticket, error)
	UpdateQrCodeURL(id int64, url string) error
	CountVerified() (int64, error)
	Count() (int64, error)
}

var _ ITicketRepository = (*TicketRepository)(nil)
