package payload

import "time"

// EventPayload is the parsed multipart event form used by create and update.
type EventPayload struct {
	Name        string    `validate:"required,max=255"`
	Slug        string    `validate:"required,max=255,slug"`
	Type        string    `validate:"required,max=100"`
	Location    string    `validate:"required,max=255"`
	Description string    `validate:"max=5000"`
	StartTime   time.Time `validate:"required"`
	EndTime     time.Time `validate:"required,gtfield=StartTime"`
	Quota       int       `validate:"required,min=1,max=10000"`
}

type CreateEventResult struct {
	EventID          int64   `json:"eventId"`
	TicketsGenerated int     `json:"ticketsGenerated"`
	TicketErrors     int     `json:"ticketErrors"`
	TicketDesign     *string `json:"ticketDesign"`
}

type RegenerateQrResult struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
	Total   int `json:"total"`
}
