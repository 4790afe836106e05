package event_controller

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// Update replaces the event fields and, when a new design is sent, its ticket design.
// Changing the quota does not issue or revoke tickets.
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	eventId, err := c.ParamsInt("id")
	if err != nil || eventId <= 0 {
		return response.SendFailed(c, "Invalid event ID")
	}

	event, err := ctrl.eventRepo.GetById(int64(eventId))
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if event == nil {
		return response.SendNotFound(c, "Event not found")
	}

	body, msg := parseEventForm(c)
	if body == nil {
		return response.SendFailed(c, msg)
	}

	file, msg := designFile(c)
	if msg != "" {
		return response.SendFailed(c, msg)
	}

	taken, err := ctrl.eventRepo.IsSlugTaken(body.Slug, event.ID)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if taken {
		return response.SendFailed(c, "Slug already exists. Please use a different slug.")
	}

	ctx := context.Background()
	previousDesign := event.TicketDesign
	applyPayload(event, body)

	var upload *model.FileUpload
	if file != nil {
		upload, err = ctrl.uploadDesign(ctx, file)
		if err != nil {
			slog.Error("Event Update design upload failed", "error", err, "event_id", event.ID)
			return response.SendError(c, "Failed to upload ticket design")
		}
		applyDesign(event, upload)
	}

	if err := ctrl.eventRepo.Update(event); err != nil {
		if upload != nil {
			ctrl.removeDesign(ctx, upload.FilePath)
		}
		return response.SendInternalError(c, err)
	}

	if upload != nil {
		ctrl.trackUpload(upload, event.ID)
		if previousDesign != nil {
			ctrl.removeDesign(ctx, *previousDesign)
		}
	}

	slog.Info("Event updated", "event_id", event.ID, "slug", event.Slug)
	return response.SendSuccess(c, "Event updated successfully", event)
}
