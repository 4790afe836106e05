package register_controller

import (
	certificatemodel "github.com/sunthewhat/easy-event-api/api/model/certificateModel"
	participantmodel "github.com/sunthewhat/easy-event-api/api/model/participantModel"
	ticketmodel "github.com/sunthewhat/easy-event-api/api/model/ticketModel"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/internal/renderer"
)

// RegisterController handles public ticket registration
type RegisterController struct {
	ticketRepo        ticketmodel.ITicketRepository
	participantRepo   participantmodel.IParticipantRepository
	certificateRepo   certificatemodel.ICertificateRepository
	storage           util.IFileStorage
	mailer            util.IMailer
	signer            renderer.IDocumentSigner
	certificateBucket string
}

func NewRegisterController(
	ticketRepo ticketmodel.ITicketRepository,
	participantRepo participantmodel.IParticipantRepository,
	certificateRepo certificatemodel.ICertificateRepository,
	storage util.IFileStorage,
	mailer util.IMailer,
	signer renderer.IDocumentSigner,
	certificateBucket string,
) *RegisterController {
	return &RegisterController{
		ticketRepo:        ticketRepo,
		participantRepo:   participantRepo,
		certificateRepo:   certificateRepo,
		storage:           storage,
		mailer:            mailer,
		signer:            signer,
		certificateBucket: certificateBucket,
	}
}
