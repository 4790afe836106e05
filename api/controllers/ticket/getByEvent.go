package ticket_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
)

type ticketView struct {
	ID        int64  `json:"id"`
	Token     string `json:"token"`
	QrCodeURL string `json:"qr_code_url"`
}

// GetByEvent lists the event's tickets in issue order.
func (ctrl *TicketController) GetByEvent(c *fiber.Ctx) error {
	eventId, err := c.ParamsInt("id")
	if err != nil || eventId <= 0 {
		return response.SendFailed(c, "Invalid event ID")
	}

	tickets, err := ctrl.ticketRepo.GetByEvent(int64(eventId))
	if err != nil {
		return response.SendInternalError(c, err)
	}

	views := make([]ticketView, 0, len(tickets))
	for _, ticket := range tickets {
		views = append(views, ticketView{ID: ticket.ID, Token: ticket.Token, QrCodeURL: ticket.QrCodeURL})
	}
	return response.SendSuccess(c, "Tickets fetched", views)
}
