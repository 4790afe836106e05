package routes

import (
	"github.com/gofiber/fiber/v2"
	event_controller "github.com/sunthewhat/easy-event-api/api/controllers/event"
	offline_controller "github.com/sunthewhat/easy-event-api/api/controllers/offline"
	ticket_controller "github.com/sunthewhat/easy-event-api/api/controllers/ticket"
)

func SetupEventRoutes(router fiber.Router, events *event_controller.EventController, tickets *ticket_controller.TicketController, offline *offline_controller.OfflineTicketController) {
	eventGroup := router.Group("events")

	eventGroup.Get("", events.GetAll)
	eventGroup.Post("", events.Create)
	eventGroup.Get(":id", events.GetById)
	eventGroup.Put(":id", events.Update)
	eventGroup.Delete(":id", events.Delete)
	eventGroup.Get(":id/tickets", tickets.GetByEvent)
	eventGroup.Post(":id/offline-tickets", offline.Generate)
	eventGroup.Get(":id/offline-tickets/logs", offline.GetLogs)
}
