package payload

type EventRegistrationStat struct {
	EventID          int64   `json:"event_id"`
	Name             string  `json:"name"`
	Quota            int     `json:"quota"`
	TotalTickets     int64   `json:"total_tickets"`
	Participants     int64   `json:"participants"`
	RegistrationRate float64 `json:"registration_rate"`
}

type ReportSummary struct {
	TotalEvents       int                     `json:"total_events"`
	TotalParticipants int64                   `json:"total_participants"`
	TotalTickets      int64                   `json:"total_tickets"`
	VerifiedTickets   int64                   `json:"verified_tickets"`
	Events            []EventRegistrationStat `json:"events"`
}
