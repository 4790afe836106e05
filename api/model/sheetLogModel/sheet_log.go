package sheetlogmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/sunthewhat/easy-event-api/type/shared/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "ticket_sheet_logs"

type SheetLogRepository struct {
	collection *mongo.Collection
}

func NewSheetLogRepository(db *mongo.Database) *SheetLogRepository {
	return &SheetLogRepository{collection: db.Collection(CollectionName)}
}

func (r *SheetLogRepository) Insert(ctx context.Context, log *model.SheetLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	if log.FailedTokens == nil {
		log.FailedTokens = []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		slog.Error("SheetLogModel Insert failed", "error", err, "event_id", log.EventID)
		return err
	}
	return nil
}

// GetByEvent returns the event's most recent generations first. limit <= 0 returns all of them.
func (r *SheetLogRepository) GetByEvent(ctx context.Context, eventId int64, limit int64) ([]*model.SheetLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"event_id": eventId}, opts)
	if err != nil {
		slog.Error("SheetLogModel GetByEvent find failed", "error", err, "event_id", eventId)
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []*model.SheetLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		slog.Error("SheetLogModel GetByEvent cursor failed", "error", err, "event_id", eventId)
		return nil, err
	}
	return logs, nil
}
