package middleware

import (
	"encoding/json"
	"time"

	"hair-salon/logger"
	"hair-salon/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records every request/response pair through the async
// database logger after the handler chain has run.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		reqHeaders, _ := json.Marshal(c.GetReqHeaders())
		respHeaders, _ := json.Marshal(c.GetRespHeaders())

		asyncLogger.Log(types.LogEntry{
			Method:          c.Method(),
			URL:             c.OriginalURL(),
			RequestBody:     string(c.Body()),
			RequestHeaders:  string(reqHeaders),
			ResponseBody:    string(c.Response().Body()),
			ResponseHeaders: string(respHeaders),
			StatusCode:      c.Response().StatusCode(),
			CreatedAt:       time.Now(),
		})

		return err
	}
}
