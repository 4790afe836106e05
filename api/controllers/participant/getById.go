package participant_controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/response"
)

func (ctrl *ParticipantController) GetById(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.SendFailed(c, "Invalid participant ID")
	}

	participant, err := ctrl.participantRepo.GetById(id)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if participant == nil {
		return response.SendNotFound(c, "Participant not found")
	}
	return response.SendSuccess(c, "Participant found", participant)
}
