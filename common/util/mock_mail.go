package util

import "sync"

// MockMailer records sent mail instead of dialing SMTP.
type MockMailer struct {
	mu sync.Mutex

	SendRegistrationConfirmationFunc func(mail RegistrationMail) error
	SendCertificateFunc              func(to string, participantName string, eventName string, certificate []byte) error

	Registrations []RegistrationMail
	Certificates  []string
}

var _ IMailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendRegistrationConfirmation(mail RegistrationMail) error {
	m.mu.Lock()
	m.Registrations = append(m.Registrations, mail)
	m.mu.Unlock()
	if m.SendRegistrationConfirmationFunc != nil {
		return m.SendRegistrationConfirmationFunc(mail)
	}
	return nil
}

func (m *MockMailer) SendCertificate(to string, participantName string, eventName string, certificate []byte) error {
	m.mu.Lock()
	m.Certificates = append(m.Certificates, to)
	m.mu.Unlock()
	if m.SendCertificateFunc != nil {
		return m.SendCertificateFunc(to, participantName, eventName, certificate)
	}
	return nil
}
