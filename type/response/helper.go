package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/internal/ticketsheet"
)

func SendSuccess(c *fiber.Ctx, msg string, data ...any) error {
	return c.Status(fiber.StatusOK).JSON(Success(msg, data...))
}

func SendFailed(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error(msg))
}

func SendNotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(Error(msg))
}

func SendError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Error(msg))
}

func SendInternalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Error(err.Error()))
}

// SendTicketSheetError maps a ticket sheet pipeline error to its HTTP status and body.
func SendTicketSheetError(c *fiber.Ctx, err error) error {
	var pe *ticketsheet.Error
	if !errors.As(err, &pe) {
		return SendInternalError(c, err)
	}

	detail := ""
	if pe.Err != nil {
		detail = pe.Err.Error()
	}

	var data any
	switch {
	case pe.Token != "":
		data = fiber.Map{"token": pe.Token}
	case len(pe.Fields) > 0:
		data = pe.Fields
	}

	return c.Status(TicketSheetStatus(pe)).JSON(Error(pe.Message).WithCode(string(pe.Code), detail, data))
}

func TicketSheetStatus(pe *ticketsheet.Error) int {
	switch {
	case pe.IsValidation():
		return fiber.StatusBadRequest
	case pe.Code == ticketsheet.CodeBatchTimeout:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
