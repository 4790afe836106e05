package report_controller

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-event-api/type/payload"
	"github.com/sunthewhat/easy-event-api/type/response"
)

func (ctrl *ReportController) Summary(c *fiber.Ctx) error {
	events, err := ctrl.eventRepo.GetAllWithStats()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	participants, err := ctrl.participantRepo.Count()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	perEvent, err := ctrl.participantRepo.CountByEvent()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	tickets, err := ctrl.ticketRepo.Count()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	verified, err := ctrl.ticketRepo.CountVerified()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	summary := payload.ReportSummary{
		TotalEvents:       len(events),
		TotalParticipants: participants,
		TotalTickets:      tickets,
		VerifiedTickets:   verified,
		Events:            make([]payload.EventRegistrationStat, 0, len(events)),
	}
	for _, event := range events {
		registered := perEvent[event.ID]
		summary.Events = append(summary.Events, payload.EventRegistrationStat{
			EventID:          event.ID,
			Name:             event.Name,
			Quota:            event.Quota,
			TotalTickets:     event.TotalTickets,
			Participants:     registered,
			RegistrationRate: registrationRate(registered, event.TotalTickets),
		})
	}

	return response.SendSuccess(c, "Report summary", summary)
}

// registrationRate is a percentage rounded to two decimals.
func registrationRate(registered int64, tickets int64) float64 {
	if tickets == 0 {
		return 0
	}
	return math.Round(float64(registered)/float64(tickets)*10000) / 100
}
