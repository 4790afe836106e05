package participant_controller

import (
	participantmodel "github.com/sunthewhat/easy-event-api/api/model/participantModel"
)

// ParticipantController handles participant listing and export
type ParticipantController struct {
	participantRepo participantmodel.IParticipantRepository
}

func NewParticipantController(participantRepo participantmodel.IParticipantRepository) *ParticipantController {
	return &ParticipantController{participantRepo: participantRepo}
}
