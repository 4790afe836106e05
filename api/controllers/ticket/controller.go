package ticket_controller

import (
	ticketmodel "github.com/sunthewhat/easy-event-api/api/model/ticketModel"
	"github.com/sunthewhat/easy-event-api/internal/qr"
)

// TicketController handles ticket listing and QR maintenance
type TicketController struct {
	ticketRepo ticketmodel.ITicketRepository
	publisher  *qr.Publisher
}

func NewTicketController(ticketRepo ticketmodel.ITicketRepository, publisher *qr.Publisher) *TicketController {
	return &TicketController{
		ticketRepo: ticketRepo,
		publisher:  publisher,
	}
}
