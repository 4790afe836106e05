package routes

import (
	"github.com/gofiber/fiber/v2"
	participant_controller "github.com/sunthewhat/easy-event-api/api/controllers/participant"
)

func SetupParticipantRoutes(router fiber.Router, participants *participant_controller.ParticipantController) {
	participantGroup := router.Group("participants")

	participantGroup.Get("", participants.GetAll)
	participantGroup.Get("export", participants.Export)
	participantGroup.Get(":id", participants.GetById)
}
