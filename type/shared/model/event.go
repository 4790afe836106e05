package model

import "time"

type Event struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Slug             string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Type             string    `gorm:"size:100;not null" json:"type"`
	Location         string    `gorm:"size:255;not null" json:"location"`
	Description      string    `gorm:"type:text" json:"description"`
	StartTime        time.Time `gorm:"not null" json:"start_time"`
	EndTime          time.Time `gorm:"not null" json:"end_time"`
	Quota            int       `gorm:"not null" json:"quota"`
	TicketDesign     *string   `gorm:"size:1024" json:"ticket_design"`
	TicketDesignSize *int64    `json:"ticket_design_size"`
	TicketDesignType *string   `gorm:"size:100" json:"ticket_design_type"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EventWithStats is an event with its ticket counters.
type EventWithStats struct {
	Event
	TotalTickets     int64 `json:"total_tickets"`
	VerifiedTickets  int64 `json:"verified_tickets"`
	AvailableTickets int64 `json:"available_tickets"`
}
