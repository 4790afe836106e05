package offline_controller

import (
	"time"

	eventmodel "github.com/sunthewhat/easy-event-api/api/model/eventModel"
	sheetlogmodel "github.com/sunthewhat/easy-event-api/api/model/sheetLogModel"
	ticketmodel "github.com/sunthewhat/easy-event-api/api/model/ticketModel"
	"github.com/sunthewhat/easy-event-api/internal/renderer"
	"github.com/sunthewhat/easy-event-api/internal/ticketsheet"
	"github.com/sunthewhat/easy-event-api/type/shared"
)

const defaultMaxUploadMB = 20

// OfflineTicketController serves printable ticket sheets for events.
type OfflineTicketController struct {
	eventRepo      eventmodel.IEventRepository
	ticketRepo     ticketmodel.ITicketRepository
	sheetLogRepo   sheetlogmodel.ISheetLogRepository
	signer         renderer.IDocumentSigner
	generator      *ticketsheet.Generator
	maxUploadBytes int64
}

func NewOfflineTicketController(
	eventRepo eventmodel.IEventRepository,
	ticketRepo ticketmodel.ITicketRepository,
	sheetLogRepo sheetlogmodel.ISheetLogRepository,
	signer renderer.IDocumentSigner,
	cfg *shared.TicketSheetConfig,
) *OfflineTicketController {
	opts, maxUploadMB := SheetOptions(cfg)
	return &OfflineTicketController{
		eventRepo:      eventRepo,
		ticketRepo:     ticketRepo,
		sheetLogRepo:   sheetLogRepo,
		signer:         signer,
		generator:      ticketsheet.NewGenerator(opts),
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
	}
}

// SheetOptions turns the optional ticket_sheet config block into generator options.
func SheetOptions(cfg *shared.TicketSheetConfig) (ticketsheet.Options, int) {
	opts := ticketsheet.Options{}
	maxUploadMB := defaultMaxUploadMB
	if cfg == nil {
		return opts, maxUploadMB
	}

	if cfg.Workers != nil {
		opts.Workers = *cfg.Workers
	}
	if cfg.TimeoutSeconds != nil {
		opts.Timeout = time.Duration(*cfg.TimeoutSeconds) * time.Second
	}
	if cfg.FailureMode != nil {
		opts.FailureMode = ticketsheet.FailureMode(*cfg.FailureMode)
	}
	if cfg.MaxUploadMB != nil {
		maxUploadMB = *cfg.MaxUploadMB
	}
	return opts, maxUploadMB
}
