package sheetlogmodel

import (
	"context"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// ISheetLogRepository defines the interface for ticket sheet log operations
type ISheetLogRepository interface {
	Insert(ctx context.Context, log *model.SheetLog) error
	GetByEvent(ctx context.Context, eventId int64, limit int64) ([]*model.SheetLog, error)
}

var _ ISheetLogRepository = (*SheetLogRepository)(nil)
