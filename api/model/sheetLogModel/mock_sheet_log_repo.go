package sheetlogmodel

import (
	"context"
	"sync"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// MockSheetLogRepository keeps inserted logs in memory unless a Func override is set.
type MockSheetLogRepository struct {
	InsertFunc     func(ctx context.Context, log *model.SheetLog) error
	GetByEventFunc func(ctx context.Context, eventId int64, limit int64) ([]*model.SheetLog, error)

	mu   sync.Mutex
	Logs []*model.SheetLog
}

var _ ISheetLogRepository = (*MockSheetLogRepository)(nil)

func NewMockSheetLogRepository() *MockSheetLogRepository {
	return &MockSheetLogRepository{}
}

func (m *MockSheetLogRepository) Insert(ctx context.Context, log *model.SheetLog) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, log)
	return nil
}

func (m *MockSheetLogRepository) GetByEvent(ctx context.Context, eventId int64, limit int64) ([]*model.SheetLog, error) {
	if m.GetByEventFunc != nil {
		return m.GetByEventFunc(ctx, eventId, limit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var logs []*model.SheetLog
	for i := len(m.Logs) - 1; i >= 0; i-- {
		if m.Logs[i].EventID == eventId {
			logs = append(logs, m.Logs[i])
		}
	}
	return logs, nil
}
