package certificate_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

func (ctrl *CertificateController) GetAll(c *fiber.Ctx) error {
	certificates, err := ctrl.certificateRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if certificates == nil {
		certificates = []*model.Certificate{}
	}
	return response.SendSuccess(c, "Certificates fetched", certificates)
}
