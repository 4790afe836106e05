package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/internal/ticketsheet"
	"github.com/sunthewhat/easy-event-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	var sheetErr *ticketsheet.Error
	if errors.As(err, &sheetErr) {
		return response.SendTicketSheetError(c, sheetErr)
	}

	// Anything else is treated as an internal server error
	slog.Error("Unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
