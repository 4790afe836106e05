package ticket_controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/internal/metrics"
	"github.com/sunthewhat/easy-event-api/type/payload"
	"github.com/sunthewhat/easy-event-api/type/response"
)

// RegenerateQr republishes the QR code of every ticket, for example after server_url changed.
func (ctrl *TicketController) RegenerateQr(c *fiber.Ctx) error {
	tickets, err := ctrl.ticketRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if len(tickets) == 0 {
		return response.SendSuccess(c, "No tickets found to regenerate", payload.RegenerateQrResult{})
	}

	succeeded, failed := ctrl.publisher.PublishAll(context.Background(), tickets, ctrl.ticketRepo.UpdateQrCodeURL)
	metrics.RecordTicketOperation("regenerate_qr", "success", succeeded)
	if failed > 0 {
		metrics.RecordTicketOperation("regenerate_qr", "error", failed)
	}

	slog.Info("QR regeneration completed", "success", succeeded, "errors", failed, "total", len(tickets))
	return response.SendSuccess(c, fmt.Sprintf("Regenerated %d QR codes successfully", succeeded), payload.RegenerateQrResult{
		Success: succeeded,
		Errors:  failed,
		Total:   len(tickets),
	})
}
