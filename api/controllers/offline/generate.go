package offline_controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/internal/metrics"
	"github.com/sunthewhat/easy-event-api/internal/ticketsheet"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// Generate renders one ticket per participant onto the uploaded template and returns the sheet PDF.
func (ctrl *OfflineTicketController) Generate(c *fiber.Ctx) error {
	start := time.Now()

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

	template, err := ctrl.readTemplate(c)
	if err != nil {
		return ctrl.reject(c, event.ID, err)
	}

	placement, err := readPlacement(c, template.Size())
	if err != nil {
		return ctrl.reject(c, event.ID, err)
	}

	participants, sent, err := readParticipants(c)
	if err != nil {
		return ctrl.reject(c, event.ID, err)
	}
	if !sent {
		participants, err = ctrl.eventParticipants(event.ID)
		if err != nil {
			return response.SendInternalError(c, err)
		}
	}

	result, err := ctrl.generator.Generate(c.UserContext(), ticketsheet.Request{
		Template:     template,
		Placement:    placement,
		Participants: participants,
	})
	if err != nil {
		status := "failed"
		var pe *ticketsheet.Error
		switch {
		case errors.As(err, &pe) && pe.IsValidation():
			status = "rejected"
		case ticketsheet.CodeOf(err) == ticketsheet.CodeBatchTimeout:
			status = "timeout"
		}
		metrics.RecordTicketSheet(status, 0, 0, time.Since(start))
		ctrl.writeLog(event.ID, len(participants), status, err, nil)
		return response.SendTicketSheetError(c, err)
	}

	pdf, err := ctrl.signer.SignPDF(result.PDF, "Offline tickets", fmt.Sprintf("event-%d-offline-tickets", event.ID))
	if err != nil {
		slog.Warn("Offline tickets signing skipped", "error", err, "event_id", event.ID)
		pdf = result.PDF
	}

	status := "success"
	if len(result.Failures) > 0 {
		status = "partial"
		c.Set("X-Ticket-Failures", failureHeader(result.Failures))
	}
	metrics.RecordTicketSheet(status, result.Rendered, len(result.Failures), time.Since(start))
	ctrl.writeLog(event.ID, len(participants), status, nil, result)

	slog.Info("Offline tickets generated",
		"event_id", event.ID,
		"participants", len(participants),
		"pages", result.Pages,
		"failed", len(result.Failures),
		"size", len(pdf))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="offline-tickets-%d.pdf"`, event.ID))
	c.Set("X-Ticket-Pages", strconv.Itoa(result.Pages))
	return c.Status(fiber.StatusOK).Send(pdf)
}

// eventParticipants loads the event's tickets in id order as sheet participants.
func (ctrl *OfflineTicketController) eventParticipants(eventId int64) ([]ticketsheet.Participant, error) {
	tickets, err := ctrl.ticketRepo.GetByEvent(eventId)
	if err != nil {
		return nil, err
	}
	participants := make([]ticketsheet.Participant, len(tickets))
	for i, ticket := range tickets {
		participants[i] = ticketsheet.Participant{Token: ticket.Token}
	}
	return participants, nil
}

func (ctrl *OfflineTicketController) reject(c *fiber.Ctx, eventId int64, err error) error {
	var re *requestError
	if errors.As(err, &re) {
		slog.Warn("Offline tickets request rejected", "event_id", eventId, "reason", re.message)
		return response.SendFailed(c, re.message)
	}
	slog.Warn("Offline tickets request rejected", "event_id", eventId, "error", err)
	return response.SendTicketSheetError(c, err)
}

// failureHeader lists failed tokens, percent-encoded and comma separated.
func failureHeader(failures []ticketsheet.Failure) string {
	tokens := make([]string, len(failures))
	for i, failure := range failures {
		tokens[i] = url.QueryEscape(failure.Token)
	}
	return strings.Join(tokens, ",")
}

// writeLog stores the generation outcome. A failed write never fails the request.
func (ctrl *OfflineTicketController) writeLog(eventId int64, participants int, status string, err error, result *ticketsheet.Result) {
	log := &model.SheetLog{
		EventID:      eventId,
		Participants: participants,
		FailureMode:  string(ctrl.generator.Options().FailureMode),
		Status:       status,
		ErrorCode:    string(ticketsheet.CodeOf(err)),
	}
	if result != nil {
		log.Pages = result.Pages
		log.Rendered = result.Rendered
		log.DurationMs = result.Duration.Milliseconds()
		for _, failure := range result.Failures {
			log.FailedTokens = append(log.FailedTokens, failure.Token)
		}
	}

	if err := ctrl.sheetLogRepo.Insert(context.Background(), log); err != nil {
		slog.Warn("Failed to write ticket sheet log", "error", err, "event_id", eventId)
	}
}
