package middleware

import (
	"fmt"
	"time"

	"fleet-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// NewLogger propagates or mints an X-Request-ID and logs one line per
// request with method, path, status and latency.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(requestIDHeader, requestID)

		start := time.Now()
		err := ctx.Next()

		logger := log.GetLogger()
		logger.Info(
			"http",
			fmt.Sprintf("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start)),
			"request",
			requestID,
		)
		return err
	}
}
