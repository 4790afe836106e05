package ticketmodel

import "github.com/sunthewhat/easy-event-api/type/shared/model"

// MockTicketRepository is a mock implementation for testing
type MockTicketRepository struct {
	GetByEventFunc      func(eventId int64) ([]*model.Ticket, error)
	GetByTokenFunc      func(token string) (*model.Ticket, error)
	GetAllFunc          func() ([]*model.Ticket, error)
	UpdateQrCodeURLFunc func(id int64, url string) error
	CountVerifiedFunc   func() (int64, error)
	CountFunc           func() (int64, error)
}

var _ ITicketRepository = (*MockTicketRepository)(nil)

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{}
}

func (m *MockTicketRepository) GetByEvent(eventId int64) ([]*model.Ticket, error) {
	if m.GetByEventFunc != nil {
		return m.GetByEventFunc(eventId)
	}
	return nil, nil
}

func (m *MockTicketRepository) GetByToken(token string) (*model.Ticket, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(token)
	}
	return nil, nil
}

func (m *MockTicketRepository) GetAll() ([]*model.Ticket, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockTicketRepository) UpdateQrCodeURL(id int64, url string) error {
	if m.UpdateQrCodeURLFunc != nil {
		return m.UpdateQrCodeURLFunc(id, url)
	}
	return nil
}

func (m *MockTicketRepository) CountVerified() (int64, error) {
	if m.CountVerifiedFunc != nil {
		return m.CountVerifiedFunc()
	}
	return 0, nil
}

func (m *MockTicketRepository) Count() (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}
