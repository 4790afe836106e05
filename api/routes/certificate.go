package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/easy-event-api/api/controllers/certificate"
)

func SetupCertificateRoutes(router fiber.Router, certificates *certificate_controller.CertificateController) {
	certificateGroup := router.Group("certificates")

	certificateGroup.Get("", certificates.GetAll)
	certificateGroup.Get("templates", certificates.GetTemplates)
	certificateGroup.Post("templates", certificates.UploadTemplate)
	certificateGroup.Post(":id/send", certificates.Send)
}
