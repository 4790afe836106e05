package report_controller

import (
	eventmodel "github.com/sunthewhat/easy-event-api/api/model/eventModel"
	participantmodel "github.com/sunthewhat/easy-event-api/api/model/participantModel"
	ticketmodel "github.com/sunthewhat/easy-event-api/api/model/ticketModel"
)

// ReportController serves dashboard aggregates
type ReportController struct {
	eventRepo       eventmodel.IEventRepository
	ticketRepo      ticketmodel.ITicketRepository
	participantRepo participantmodel.IParticipantRepository
}

func NewReportController(
	eventRepo eventmodel.IEventRepository,
	ticketRepo ticketmodel.ITicketRepository,
	participantRepo participantmodel.IParticipantRepository,
) *ReportController {
	return &ReportController{
		eventRepo:       eventRepo,
		ticketRepo:      ticketRepo,
		participantRepo: participantRepo,
	}
}
