package model

// All lists every table for AutoMigrate, parents first.
func All() []any {
	return []any{
		new(Event),
		new(Ticket),
		new(Participant),
		new(Certificate),
		new(CertificateTemplate),
		new(FileUpload),
	}
}
