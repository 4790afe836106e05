package eventmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// MockEventRepository is a mock implementation for testing
type MockEventRepository struct {
	CreateWithTicketsFunc func(event *model.Event, tickets []*model.Ticket) error
	GetAllWithStatsFunc   func() ([]*model.EventWithStats, error)
	GetByIdFunc           func(id int64) (*model.Event, error)
	IsSlugTakenFunc       func(slug string, excludeId int64) (bool, error)
	UpdateFunc            func(event *model.Event) error
	DeleteFunc            func(id int64) error
}

// Ensure MockEventRepository implements IEventRepository
var _ IEventRepository = (*MockEventRepository)(nil)

// NewMockEventRepository creates a new mock repository
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) CreateWithTickets(event *model.Event, tickets []*model.Ticket) error {
	if m.CreateWithTicketsFunc != nil {
		return m.CreateWithTicketsFunc(event, tickets)
	}
	return nil
}

func (m *MockEventRepository) GetAllWithStats() ([]*model.EventWithStats, error) {
	if m.GetAllWithStatsFunc != nil {
		return m.GetAllWithStatsFunc()
	}
	return nil, nil
}

func (m *MockEventRepository) GetById(id int64) (*model.Event, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockEventRepository) IsSlugTaken(slug string, excludeId int64) (bool, error) {
	if m.IsSlugTakenFunc != nil {
		return m.IsSlugTakenFunc(slug, excludeId)
	}
	return false, nil
}

func (m *MockEventRepository) Update(event *model.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(event)
	}
	return nil
}

func (m *MockEventRepository) Delete(id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
