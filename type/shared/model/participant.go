package model

import "time"

type Participant struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID     int64     `gorm:"not null;uniqueIndex" json:"ticket_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Phone        *string   `gorm:"size:50" json:"phone"`
	Organization *string   `gorm:"size:255" json:"organization"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`

	Ticket      *Ticket      `gorm:"constraint:OnDelete:CASCADE;" json:"ticket,omitempty"`
	Certificate *Certificate `json:"certificate,omitempty"`
}
