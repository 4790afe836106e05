package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// GetById returns the event together with its registered participants.
func (ctrl *EventController) GetById(c *fiber.Ctx) error {
	eventId, err := c.ParamsInt("id")
	if err != nil || eventId <= 0 {
		return response.SendFailed(c, "Invalid event ID")
	}

	event, err := ctrl.eventRepo.GetById(int64(eventId))
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if event == nil {
		slog.Warn("Getting non-existing event", "event_id", eventId)
		return response.SendNotFound(c, "Event not found")
	}

	participants, err := ctrl.participantRepo.GetByEvent(event.ID)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if participants == nil {
		participants = []*model.Participant{}
	}

	return response.SendSuccess(c, "Event found", fiber.Map{
		"event":        event,
		"participants": participants,
	})
}
