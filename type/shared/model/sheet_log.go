package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SheetLog records one offline ticket sheet generation. Stored in Mongo, not migrated by GORM.
type SheetLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID      int64              `bson:"event_id" json:"event_id"`
	Participants int                `bson:"participants" json:"participants"`
	Pages        int                `bson:"pages" json:"pages"`
	Rendered     int                `bson:"rendered" json:"rendered"`
	FailedTokens []string           `bson:"failed_tokens" json:"failed_tokens"`
	FailureMode  string             `bson:"failure_mode" json:"failure_mode"`
	Status       string             `bson:"status" json:"status"`
	ErrorCode    string             `bson:"error_code,omitempty" json:"error_code,omitempty"`
	DurationMs   int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
