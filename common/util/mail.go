package util

import (
	"fmt"
	"html"
	"io"
	"log/slog"
	"time"

	"github.com/sunthewhat/easy-event-api/common"
	"gopkg.in/gomail.v2"
)

// RegistrationMail carries what the confirmation email shows about the event.
type RegistrationMail struct {
	To              string
	ParticipantName string
	EventName       string
	EventType       string
	Location        string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
}

type IMailer interface {
	SendRegistrationConfirmation(mail RegistrationMail) error
	SendCertificate(to string, participantName string, eventName string, certificate []byte) error
}

type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ IMailer = (*GomailMailer)(nil)

func InitDialer() {
	port := 587
	if common.Config.MailPort != nil {
		port = *common.Config.MailPort
	}
	dialer := gomail.NewDialer(*common.Config.MailHost, port, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

func NewGomailMailer(dialer *gomail.Dialer) *GomailMailer {
	from := *common.Config.MailUser
	if common.Config.MailFrom != nil && *common.Config.MailFrom != "" {
		from = *common.Config.MailFrom
	}
	return &GomailMailer{dialer: dialer, from: from}
}

func (m *GomailMailer) SendRegistrationConfirmation(mail RegistrationMail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", fmt.Sprintf("Registration Confirmed - %s", mail.EventName))
	msg.SetBody("text/html", RegistrationMailBody(mail))

	if err := m.dialer.DialAndSend(msg); err != nil {
		slog.Error("Error Sending Registration Mail", "error", err, "recipient", mail.To)
		return err
	}

	slog.Info("Registration email sent", "recipient", mail.To, "event", mail.EventName)
	return nil
}

func (m *GomailMailer) SendCertificate(to string, participantName string, eventName string, certificate []byte) error {
	if len(certificate) == 0 {
		return fmt.Errorf("certificate is empty")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Certificate - %s", eventName))
	msg.SetBody("text/html", fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1>Certificate Ready!</h1>
			<p>Congratulations %s!</p>
			<p>Your certificate for <strong>%s</strong> is attached to this email.</p>
			<p>Thank you for your participation.</p>
		</div>
	`, html.EscapeString(participantName), html.EscapeString(eventName)))

	// Attach with proper filename and content type
	msg.Attach("certificate.pdf",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(certificate)
			return err
		}),
		gomail.SetHeader(map[string][]string{
			"Content-Type": {"application/pdf"},
		}),
	)

	if err := m.dialer.DialAndSend(msg); err != nil {
		slog.Error("Error Sending Certificate Mail", "error", err, "recipient", to)
		return err
	}

	slog.Info("Certificate email sent", "recipient", to, "event", eventName)
	return nil
}

// RegistrationMailBody renders the HTML body of the confirmation email.
func RegistrationMailBody(mail RegistrationMail) string {
	description := ""
	if mail.Description != "" {
		description = fmt.Sprintf("<br>Description: %s", html.EscapeString(mail.Description))
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1>Registration Confirmed!</h1>
			<h2>Hello %s,</h2>
			<p>Thank you for registering for <strong>%s</strong>. Your registration has been confirmed successfully.</p>
			<p>
				Event: %s<br>
				Type: %s<br>
				Location: %s<br>
				Date: %s - %s%s
			</p>
			<p>Please keep this email for your records.</p>
		</div>
	`,
		html.EscapeString(mail.ParticipantName),
		html.EscapeString(mail.EventName),
		html.EscapeString(mail.EventName),
		html.EscapeString(mail.EventType),
		html.EscapeString(mail.Location),
		mail.StartTime.Format("2 Jan 2006 15:04"),
		mail.EndTime.Format("2 Jan 2006 15:04"),
		description,
	)
}
