package register_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/payload"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

const ticketUsedMessage = "This ticket has already been used"

func registrationEvent(event *model.Event) payload.RegistrationEvent {
	return payload.RegistrationEvent{
		ID:          event.ID,
		Name:        event.Name,
		Type:        event.Type,
		Location:    event.Location,
		Description: event.Description,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
	}
}

// lookupTicket resolves token to an unused ticket. When it returns nil the response has been sent.
func (ctrl *RegisterController) lookupTicket(c *fiber.Ctx, token string) (*model.Ticket, error) {
	ticket, err := ctrl.ticketRepo.GetByToken(token)
	if err != nil {
		return nil, response.SendInternalError(c, err)
	}
	if ticket == nil || ticket.Event == nil {
		slog.Warn("Registration with unknown token", "token", token)
		return nil, response.SendNotFound(c, "Invalid token")
	}
	if ticket.IsVerified {
		slog.Warn("Registration with used token", "token", token)
		return nil, response.SendFailed(c, ticketUsedMessage)
	}
	return ticket, nil
}

// Check tells the registration page which event an unused token belongs to.
func (ctrl *RegisterController) Check(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return response.SendFailed(c, "Token is required")
	}

	ticket, err := ctrl.lookupTicket(c, token)
	if ticket == nil {
		return err
	}

	return response.SendSuccess(c, "Ticket is valid", fiber.Map{
		"event": registrationEvent(ticket.Event),
	})
}
