package httpError

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape every use case returns. Data carries an
// optional payload for responses that ship a body alongside the error, such
// as the empty collection on not-found listings or the conflicting record on
// duplicate creation.
type CommonError struct {
	ResponseCode int         `json:"code"`
	Message      string      `json:"message"`
	Data         interface{} `json:"data,omitempty"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusBadRequest,
		Message:      "Bad request",
	}
}

func NewUnprocessableEntity() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusUnprocessableEntity,
		Message:      "Unprocessable entity",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusNotFound,
		Message:      "Not found",
	}
}

// NewConflict reports duplicate unique fields. The envelope carries it with
// HTTP 400, matching the documented contract for duplicate license plates.
func NewConflict() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusBadRequest,
		Message:      "Conflict",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		ResponseCode: fiber.StatusInternalServerError,
		Message:      "Internal server error",
	}
}
