package participant_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

func (ctrl *ParticipantController) GetAll(c *fiber.Ctx) error {
	participants, err := ctrl.participantRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if participants == nil {
		participants = []*model.Participant{}
	}
	return response.SendSuccess(c, "Participants fetched", participants)
}
