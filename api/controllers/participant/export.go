package participant_controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

var exportHeader = []string{"Name", "Email", "Phone", "Organization", "Event", "Token", "Verified", "Registered At"}

// Export streams every participant as a CSV attachment.
func (ctrl *ParticipantController) Export(c *fiber.Ctx) error {
	participants, err := ctrl.participantRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return response.SendInternalError(c, err)
	}
	for _, p := range participants {
		if err := w.Write(exportRow(p)); err != nil {
			return response.SendInternalError(c, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return response.SendInternalError(c, err)
	}

	slog.Info("Participants exported", "count", len(participants))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="participants-%s.csv"`, time.Now().Format("20060102")))
	return c.Send(buf.Bytes())
}

func exportRow(p *model.Participant) []string {
	var eventName, token string
	verified := false
	if p.Ticket != nil {
		token = p.Ticket.Token
		verified = p.Ticket.IsVerified
		if p.Ticket.Event != nil {
			eventName = p.Ticket.Event.Name
		}
	}
	return []string{
		p.Name,
		p.Email,
		deref(p.Phone),
		deref(p.Organization),
		eventName,
		token,
		strconv.FormatBool(verified),
		p.RegisteredAt.Format(time.RFC3339),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
