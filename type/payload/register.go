package payload

import "time"

type RegisterPayload struct {
	Token        string  `json:"token" validate:"required,max=32"`
	Name         string  `json:"name" validate:"required,max=255"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
}

// RegistrationEvent is the public view of an event shown to someone holding a ticket.
type RegistrationEvent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type RegisterResult struct {
	ParticipantID int64             `json:"participantId"`
	Event         RegistrationEvent `json:"event"`
}
