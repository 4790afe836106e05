package event_controller

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// Delete removes the event, everything registered under it and its ticket design.
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	eventId, err := c.ParamsInt("id")
	if err != nil || eventId <= 0 {
		return response.SendFailed(c, "Event ID is required")
	}

	event, err := ctrl.eventRepo.GetById(int64(eventId))
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if event == nil {
		return response.SendNotFound(c, "Event not found")
	}

	designs := ctrl.trackedDesigns(event)

	if err := ctrl.eventRepo.Delete(event.ID); err != nil {
		return response.SendInternalError(c, err)
	}

	for _, url := range designs {
		ctrl.removeDesign(context.Background(), url)
	}

	slog.Info("Event deleted", "event_id", event.ID, "slug", event.Slug)
	return response.SendSuccess(c, "Event deleted successfully")
}

// trackedDesigns lists every design object ever uploaded for the event, current one first.
func (ctrl *EventController) trackedDesigns(event *model.Event) []string {
	seen := map[string]bool{}
	var urls []string
	add := func(url string) {
		if url != "" && !seen[url] {
			seen[url] = true
			urls = append(urls, url)
		}
	}

	if event.TicketDesign != nil {
		add(*event.TicketDesign)
	}

	uploads, err := ctrl.uploadRepo.GetByRelated(model.UploadTypeTicketDesign, event.ID)
	if err != nil {
		slog.Warn("Failed to list tracked designs", "error", err, "event_id", event.ID)
		return urls
	}
	for _, upload := range uploads {
		add(upload.FilePath)
	}
	return urls
}
