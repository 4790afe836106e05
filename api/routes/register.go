package routes

import (
	"github.com/gofiber/fiber/v2"
	register_controller "github.com/sunthewhat/easy-event-api/api/controllers/register"
)

func SetupRegisterRoutes(router fiber.Router, register *register_controller.RegisterController) {
	registerGroup := router.Group("register")

	registerGroup.Get("", register.Check)
	registerGroup.Post("", register.Register)
}
