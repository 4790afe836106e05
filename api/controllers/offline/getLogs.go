package offline_controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
)

// GetLogs lists recent sheet generations for the event, newest first.
func (ctrl *OfflineTicketController) GetLogs(c *fiber.Ctx) error {
	eventId, err := c.ParamsInt("id")
	if err != nil || eventId <= 0 {
		return response.SendFailed(c, "Invalid event ID")
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		return response.SendFailed(c, "limit must be between 1 and 500")
	}

	logs, err := ctrl.sheetLogRepo.GetByEvent(context.Background(), int64(eventId), int64(limit))
	if err != nil {
		return response.SendInternalError(c, err)
	}
	return response.SendSuccess(c, "Ticket sheet logs fetched", logs)
}
