package participantmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// IParticipantRepository defines the interface for participant repository operations
type IParticipantRepository interface {
	Register(participant *model.Participant) error
	GetAll() ([]*model.Participant, error)
	GetByEvent(eventId int64) ([]*model.Participant, error)
	GetById(id int64) (*model.Participant, error)
	Count() (int64, error)
	CountByEvent() (map[int64]int64, error)
}

var _ IParticipantRepository = (*ParticipantRepository)(nil)
