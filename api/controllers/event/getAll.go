package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	events, err := ctrl.eventRepo.GetAllWithStats()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if events == nil {
		events = []*model.EventWithStats{}
	}

	slog.Info("Event GetAll", "count", len(events))
	return response.SendSuccess(c, "Events fetched", events)
}
