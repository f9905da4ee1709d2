package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/http/middleware"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	RequestID string    `json:"request_id"`
	Error     errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// fiberErrorCodes maps statuses raised by Fiber itself to stable codes.
var fiberErrorCodes = map[int]errorBody{
	fiber.StatusBadRequest:            {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:              {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:      {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {Code: "FILE_TOO_LARGE", Message: "request body too large"},
}

func requestID(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return s
}

// writeError answers with a safe message only; internal errors never reach the body.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, "")
}

// writeErrorDetails also fills error.details, used for upstream diagnostics
// such as the reply of the generation service.
func writeErrorDetails(c *fiber.Ctx, status int, code, message, details string) error {
	return c.Status(status).JSON(errorResponse{
		RequestID: requestID(c),
		Error:     errorBody{Code: code, Message: message, Details: details},
	})
}

// internalError logs err against the request and answers 500 INTERNAL_ERROR.
func internalError(c *fiber.Ctx, msg string, err error) error {
	middleware.LoggerFromCtx(c).WithError(err).Error(msg)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler renders errors that escape handlers (routing misses, body
// limit, panics recovered upstream) in the same envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return internalError(c, "unhandled error", err)
		}
		if body, ok := fiberErrorCodes[fe.Code]; ok {
			return writeError(c, fe.Code, body.Code, body.Message)
		}
		if fe.Code < fiber.StatusInternalServerError {
			return writeError(c, fe.Code, "REQUEST_ERROR", fe.Message)
		}
		middleware.LoggerFromCtx(c).WithError(err).Error("unhandled error")
		return writeError(c, fe.Code, "INTERNAL_ERROR", "internal server error")
	}
}
