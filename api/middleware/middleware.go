package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sunthewhat/easy-event-api/common"
)

func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: common.Config != nil && common.Config.Environment != nil && !*common.Config.Environment,
	})
}

func Cors() fiber.Handler {
	origins := []string{}
	if common.Config != nil {
		for _, origin := range common.Config.Cors {
			if origin != nil {
				origins = append(origins, *origin)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins:  strings.Join(origins, ","),
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		ExposeHeaders: "Content-Disposition, X-Ticket-Failures, X-Ticket-Pages",
	})
}
