package model

import "time"

type Ticket struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID    int64     `gorm:"not null;index" json:"event_id"`
	Token      string    `gorm:"size:32;not null;uniqueIndex" json:"token"`
	QrCodeURL  string    `gorm:"size:1024" json:"qr_code_url"`
	IsVerified bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`

	Event *Event `gorm:"constraint:OnDelete:CASCADE;" json:"event,omitempty"`
}
