package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware catat semua request, ikut membawa request-id
// yang di-set middleware timing di main.go.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${ip} reqid=${locals:reqid} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
