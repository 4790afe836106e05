package event_controller

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/internal/metrics"
	"github.com/sunthewhat/easy-event-api/internal/qr"
	"github.com/sunthewhat/easy-event-api/type/payload"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// Create stores the event, issues quota tickets and publishes a QR code for each of them.
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	body, msg := parseEventForm(c)
	if body == nil {
		return response.SendFailed(c, msg)
	}

	file, msg := designFile(c)
	if msg != "" {
		return response.SendFailed(c, msg)
	}

	taken, err := ctrl.eventRepo.IsSlugTaken(body.Slug, 0)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if taken {
		slog.Warn("Event Create with taken slug", "slug", body.Slug)
		return response.SendFailed(c, "Slug already exists. Please use a different slug.")
	}

	ctx := context.Background()

	event := &model.Event{}
	applyPayload(event, body)

	var upload *model.FileUpload
	if file != nil {
		upload, err = ctrl.uploadDesign(ctx, file)
		if err != nil {
			slog.Error("Event Create design upload failed", "error", err, "slug", body.Slug)
			return response.SendError(c, "Failed to upload ticket design")
		}
		applyDesign(event, upload)
	}

	tickets := issueTickets(body.Quota)
	if err := ctrl.eventRepo.CreateWithTickets(event, tickets); err != nil {
		if upload != nil {
			ctrl.removeDesign(ctx, upload.FilePath)
		}
		metrics.RecordTicketOperation("issue", "error", len(tickets))
		return response.SendInternalError(c, err)
	}

	if upload != nil {
		ctrl.trackUpload(upload, event.ID)
	}

	succeeded, failed := ctrl.publisher.PublishAll(ctx, tickets, ctrl.ticketRepo.UpdateQrCodeURL)
	metrics.RecordTicketOperation("issue", "success", succeeded)
	if failed > 0 {
		metrics.RecordTicketOperation("issue", "error", failed)
	}

	slog.Info("Event created", "event_id", event.ID, "slug", event.Slug, "tickets", succeeded, "ticket_errors", failed)
	return response.SendSuccess(c, "Event created successfully", payload.CreateEventResult{
		EventID:          event.ID,
		TicketsGenerated: succeeded,
		TicketErrors:     failed,
		TicketDesign:     event.TicketDesign,
	})
}

// issueTickets builds quota tickets with distinct tokens.
func issueTickets(quota int) []*model.Ticket {
	seen := make(map[string]bool, quota)
	tickets := make([]*model.Ticket, 0, quota)
	for len(tickets) < quota {
		token := qr.NewToken()
		if seen[token] {
			continue
		}
		seen[token] = true
		tickets = append(tickets, &model.Ticket{Token: token})
	}
	return tickets
}
