package participantmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// MockParticipantRepository is a mock implementation for testing
type MockParticipantRepository struct {
	RegisterFunc     func(participant *model.Participant) error
	GetAllFunc       func() ([]*model.Participant, error)
	GetByEventFunc   func(eventId int64) ([]*model.Participant, error)
	GetByIdFunc      func(id int64) (*model.Participant, error)
	CountFunc        func() (int64, error)
	CountByEventFunc func() (map[int64]int64, error)
}

var _ IParticipantRepository = (*MockParticipantRepository)(nil)

func NewMockParticipantRepository() *MockParticipantRepository {
	return &MockParticipantRepository{}
}

func (m *MockParticipantRepository) Register(participant *model.Participant) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(participant)
	}
	return nil
}

func (m *MockParticipantRepository) GetAll() ([]*model.Participant, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetByEvent(eventId int64) ([]*model.Participant, error) {
	if m.GetByEventFunc != nil {
		return m.GetByEventFunc(eventId)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetById(id int64) (*model.Participant, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) Count() (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}

func (m *MockParticipantRepository) CountByEvent() (map[int64]int64, error) {
	if m.CountByEventFunc != nil {
		return m.CountByEventFunc()
	}
	return map[int64]int64{}, nil
}
