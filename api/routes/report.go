package routes

import (
	"github.com/gofiber/fiber/v2"
	report_controller "github.com/sunthewhat/easy-event-api/api/controllers/report"
)

func SetupReportRoutes(router fiber.Router, reports *report_controller.ReportController) {
	reportGroup := router.Group("reports")

	reportGroup.Get("summary", reports.Summary)
}
