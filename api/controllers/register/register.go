package register_controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	participantmodel "github.com/sunthewhat/easy-event-api/api/model/participantModel"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/internal/certificate"
	"github.com/sunthewhat/easy-event-api/internal/metrics"
	"github.com/sunthewhat/easy-event-api/type/payload"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// Register claims a ticket for a participant. The certificate and the
// confirmation email are best effort and never fail the registration.
func (ctrl *RegisterController) Register(c *fiber.Ctx) error {
	body := new(payload.RegisterPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		messages := util.GetValidationErrors(err)
		return response.SendFailed(c, messages[0])
	}

	ticket, err := ctrl.lookupTicket(c, body.Token)
	if ticket == nil {
		return err
	}

	participant := &model.Participant{
		TicketID:     ticket.ID,
		Name:         body.Name,
		Email:        body.Email,
		Phone:        emptyToNil(body.Phone),
		Organization: emptyToNil(body.Organization),
	}
	if err := ctrl.participantRepo.Register(participant); err != nil {
		if errors.Is(err, participantmodel.ErrTicketAlreadyUsed) {
			return response.SendFailed(c, ticketUsedMessage)
		}
		metrics.RecordTicketOperation("register", "error", 1)
		return response.SendInternalError(c, err)
	}
	metrics.RecordTicketOperation("register", "success", 1)

	event := ticket.Event
	if err := ctrl.issueCertificate(context.Background(), participant, event); err != nil {
		slog.Error("Certificate generation failed", "error", err, "participant_id", participant.ID)
	}

	if err := ctrl.mailer.SendRegistrationConfirmation(util.RegistrationMail{
		To:              participant.Email,
		ParticipantName: participant.Name,
		EventName:       event.Name,
		EventType:       event.Type,
		Location:        event.Location,
		Description:     event.Description,
		StartTime:       event.StartTime,
		EndTime:         event.EndTime,
	}); err != nil {
		slog.Error("Failed to send confirmation email", "error", err, "participant_id", participant.ID)
	}

	slog.Info("Participant registered", "participant_id", participant.ID, "event_id", event.ID, "token", ticket.Token)
	return response.SendSuccess(c, "Registration successful", payload.RegisterResult{
		ParticipantID: participant.ID,
		Event:         registrationEvent(event),
	})
}

// issueCertificate renders, signs and stores the participant's certificate.
func (ctrl *RegisterController) issueCertificate(ctx context.Context, participant *model.Participant, event *model.Event) error {
	pdf, err := certificate.Render(certificate.Data{
		ParticipantName: participant.Name,
		EventName:       event.Name,
		IssuedAt:        time.Now(),
	})
	if err != nil {
		return err
	}

	signed, err := ctrl.signer.SignPDF(pdf, "Certificate of Participation", fmt.Sprintf("participant-%d", participant.ID))
	if err == nil {
		pdf = signed
	}

	url, err := ctrl.storage.Upload(ctx, ctrl.certificateBucket, certificate.ObjectName(participant.ID, event.ID), pdf, "application/pdf")
	if err != nil {
		return err
	}

	return ctrl.certificateRepo.Create(&model.Certificate{
		ParticipantID: participant.ID,
		Path:          url,
	})
}

func emptyToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
