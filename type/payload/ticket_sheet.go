package payload

// OfflineTicketParticipant is one entry of the participants JSON form field.
type OfflineTicketParticipant struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
