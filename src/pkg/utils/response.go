package utils

import (
	"errors"

	httpError "fleet-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is what every use case returns to its controller.
type Result struct {
	Data  interface{}
	Error error
}

// BaseWrapperModel is the uniform response envelope. Null members are
// stripped from the marshalled body; an empty slice in Data is kept so
// not-found listings still serialize "data": [].
type BaseWrapperModel struct {
	Status  string      `json:"status,omitempty"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Response writes a success envelope with the given HTTP code.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(BaseWrapperModel{
		Status:  StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError maps a use-case error onto the envelope. Typed errors keep
// their code, message and optional payload; anything else becomes a 500 with
// a generic message so internals never leak.
func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if !errors.As(err, &commonErr) {
		commonErr = httpError.NewInternalServerError()
	}
	return ctx.Status(commonErr.ResponseCode).JSON(BaseWrapperModel{
		Status:  StatusError,
		Success: false,
		Message: commonErr.Message,
		Data:    commonErr.Data,
	})
}
