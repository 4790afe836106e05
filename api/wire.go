package api

import (
	certificate_controller "github.com/sunthewhat/easy-event-api/api/controllers/certificate"
	event_controller "github.com/sunthewhat/easy-event-api/api/controllers/event"
	offline_controller "github.com/sunthewhat/easy-event-api/api/controllers/offline"
	participant_controller "github.com/sunthewhat/easy-event-api/api/controllers/participant"
	register_controller "github.com/sunthewhat/easy-event-api/api/controllers/register"
	report_controller "github.com/sunthewhat/easy-event-api/api/controllers/report"
	ticket_controller "github.com/sunthewhat/easy-event-api/api/controllers/ticket"
	certificatemodel "github.com/sunthewhat/easy-event-api/api/model/certificateModel"
	eventmodel "github.com/sunthewhat/easy-event-api/api/model/eventModel"
	fileuploadmodel "github.com/sunthewhat/easy-event-api/api/model/fileUploadModel"
	participantmodel "github.com/sunthewhat/easy-event-api/api/model/participantModel"
	sheetlogmodel "github.com/sunthewhat/easy-event-api/api/model/sheetLogModel"
	ticketmodel "github.com/sunthewhat/easy-event-api/api/model/ticketModel"
	"github.com/sunthewhat/easy-event-api/api/routes"
	"github.com/sunthewhat/easy-event-api/common"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/internal/qr"
	"github.com/sunthewhat/easy-event-api/internal/renderer"
)

// NewControllers builds every controller from the connections held in common.
func NewControllers(signer renderer.IDocumentSigner) *routes.Controllers {
	cfg := common.Config

	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	ticketRepo := ticketmodel.NewTicketRepository(common.Gorm)
	participantRepo := participantmodel.NewParticipantRepository(common.Gorm)
	certificateRepo := certificatemodel.NewCertificateRepository(common.Gorm)
	uploadRepo := fileuploadmodel.NewFileUploadRepository(common.Gorm)
	sheetLogRepo := sheetlogmodel.NewSheetLogRepository(common.Mongo)

	storage := util.NewMinIOStorage(common.MinIOClient)
	mailer := util.NewGomailMailer(common.Dialer)
	publisher := qr.NewPublisher(storage, *cfg.BucketTicket, *cfg.ServerURL)

	return &routes.Controllers{
		Event:       event_controller.NewEventController(eventRepo, ticketRepo, participantRepo, uploadRepo, storage, publisher, *cfg.BucketResource),
		Ticket:      ticket_controller.NewTicketController(ticketRepo, publisher),
		Offline:     offline_controller.NewOfflineTicketController(eventRepo, ticketRepo, sheetLogRepo, signer, cfg.TicketSheet),
		Register:    register_controller.NewRegisterController(ticketRepo, participantRepo, certificateRepo, storage, mailer, signer, *cfg.BucketCertificate),
		Certificate: certificate_controller.NewCertificateController(certificateRepo, uploadRepo, storage, mailer, *cfg.BucketCertificate, *cfg.BucketResource),
		Participant: participant_controller.NewParticipantController(participantRepo),
		Report:      report_controller.NewReportController(eventRepo, ticketRepo, participantRepo),
	}
}
