package routes

import (
	"github.com/gofiber/fiber/v2"
	ticket_controller "github.com/sunthewhat/easy-event-api/api/controllers/ticket"
)

func SetupTicketRoutes(router fiber.Router, tickets *ticket_controller.TicketController) {
	ticketGroup := router.Group("tickets")

	ticketGroup.Post("regenerate-qr", tickets.RegenerateQr)
}
