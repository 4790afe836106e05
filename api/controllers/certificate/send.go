package certificate_controller

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/internal/metrics"
	"github.com/sunthewhat/easy-event-api/type/response"
)

// Send mails a stored certificate to its participant and marks it sent.
func (ctrl *CertificateController) Send(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.SendFailed(c, "Invalid certificate ID")
	}

	cert, err := ctrl.certificateRepo.GetById(id)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if cert == nil {
		return response.SendNotFound(c, "Certificate not found")
	}
	if cert.Participant == nil || cert.Participant.Ticket == nil || cert.Participant.Ticket.Event == nil {
		slog.Error("Certificate without participant", "certificate_id", id)
		return response.SendError(c, "Certificate is missing its participant")
	}

	objectName, err := util.ExtractObjectNameFromURL(cert.Path, ctrl.certificateBucket)
	if err != nil {
		slog.Error("Certificate path outside bucket", "error", err, "path", cert.Path)
		return response.SendError(c, "Certificate file is unavailable")
	}

	pdf, err := ctrl.storage.Download(c.UserContext(), ctrl.certificateBucket, objectName)
	if err != nil {
		slog.Error("Failed to download certificate", "error", err, "certificate_id", id)
		return response.SendError(c, "Certificate file is unavailable")
	}

	participant := cert.Participant
	if err := ctrl.mailer.SendCertificate(participant.Email, participant.Name, participant.Ticket.Event.Name, pdf); err != nil {
		slog.Error("Failed to send certificate", "error", err, "certificate_id", id)
		metrics.RecordTicketOperation("certificate_send", "error", 1)
		return response.SendError(c, "Failed to send certificate email")
	}

	if err := ctrl.certificateRepo.MarkSent(id, time.Now()); err != nil {
		return response.SendInternalError(c, err)
	}
	metrics.RecordTicketOperation("certificate_send", "success", 1)

	slog.Info("Certificate sent", "certificate_id", id, "to", participant.Email)
	return response.SendSuccess(c, "Certificate sent successfully")
}
