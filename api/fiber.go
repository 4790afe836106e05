package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	offline_controller "github.com/sunthewhat/easy-event-api/api/controllers/offline"
	"github.com/sunthewhat/easy-event-api/api/handler"
	"github.com/sunthewhat/easy-event-api/api/middleware"
	"github.com/sunthewhat/easy-event-api/api/routes"
	"github.com/sunthewhat/easy-event-api/common"
	"github.com/sunthewhat/easy-event-api/internal/metrics"
)

// bodySlackMB leaves room for the multipart envelope and the other form fields.
const bodySlackMB = 5

func InitFiber(ctrls *routes.Controllers) {
	_, maxUploadMB := offline_controller.SheetOptions(common.Config.TicketSheet)

	cfg := fiber.Config{
		AppName:       "easy-event api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     (maxUploadMB + bodySlackMB) * 1024 * 1024,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())
	app.Use(metrics.PrometheusMiddleware())

	app.Get("/metrics", metrics.Handler())
	routes.Init(app, ctrls)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
