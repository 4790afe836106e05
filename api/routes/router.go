package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/easy-event-api/api/controllers/certificate"
	event_controller "github.com/sunthewhat/easy-event-api/api/controllers/event"
	offline_controller "github.com/sunthewhat/easy-event-api/api/controllers/offline"
	participant_controller "github.com/sunthewhat/easy-event-api/api/controllers/participant"
	register_controller "github.com/sunthewhat/easy-event-api/api/controllers/register"
	report_controller "github.com/sunthewhat/easy-event-api/api/controllers/report"
	ticket_controller "github.com/sunthewhat/easy-event-api/api/controllers/ticket"
)

// Controllers groups every HTTP handler set mounted under /api.
type Controllers struct {
	Event       *event_controller.EventController
	Ticket      *ticket_controller.TicketController
	Offline     *offline_controller.OfflineTicketController
	Register    *register_controller.RegisterController
	Certificate *certificate_controller.CertificateController
	Participant *participant_controller.ParticipantController
	Report      *report_controller.ReportController
}

func Init(router fiber.Router, ctrls *Controllers) {
	api := router.Group("api")

	SetupEventRoutes(api, ctrls.Event, ctrls.Ticket, ctrls.Offline)
	SetupTicketRoutes(api, ctrls.Ticket)
	SetupRegisterRoutes(api, ctrls.Register)
	SetupCertificateRoutes(api, ctrls.Certificate)
	SetupParticipantRoutes(api, ctrls.Participant)
	SetupReportRoutes(api, ctrls.Report)
}
