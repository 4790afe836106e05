package event_controller

import (
	eventmodel "github.com/sunthewhat/easy-event-api/api/model/eventModel"
	fileuploadmodel "github.com/sunthewhat/easy-event-api/api/model/fileUploadModel"
	participantmodel "github.com/sunthewhat/easy-event-api/api/model/participantModel"
	ticketmodel "github.com/sunthewhat/easy-event-api/api/model/ticketModel"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/internal/qr"
)

// EventController handles event-related HTTP requests
type EventController struct {
	eventRepo       eventmodel.IEventRepository
	ticketRepo      ticketmodel.ITicketRepository
	participantRepo participantmodel.IParticipantRepository
	uploadRepo      fileuploadmodel.IFileUploadRepository
	storage         util.IFileStorage
	publisher       *qr.Publisher
	designBucket    string
}

// NewEventController creates a new event controller with injected dependencies
func NewEventController(
	eventRepo eventmodel.IEventRepository,
	ticketRepo ticketmodel.ITicketRepository,
	participantRepo participantmodel.IParticipantRepository,
	uploadRepo fileuploadmodel.IFileUploadRepository,
	storage util.IFileStorage,
	publisher *qr.Publisher,
	designBucket string,
) *EventController {
	return &EventController{
		eventRepo:       eventRepo,
		ticketRepo:      ticketRepo,
		participantRepo: participantRepo,
		uploadRepo:      uploadRepo,
		storage:         storage,
		publisher:       publisher,
		designBucket:    designBucket,
	}
}
