package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/http/middleware"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// Result is the uniform response body of every data operation.
type Result struct {
	Success   bool   `json:"success"`
	ID        string `json:"id,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func writeOK(c *fiber.Ctx, status int, id string, data any) error {
	return c.Status(status).JSON(Result{Success: true, ID: id, Data: data})
}

// writeError writes the failure form of Result.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
// - message: the error message shown to the caller
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(Result{
		Success:   false,
		Error:     message,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	})
}

// classify maps an error to its HTTP status and code. Messages are passed
// through unchanged so store and transport failures reach the caller verbatim.
func classify(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case model.IsValidation(err):
		return fiber.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, repository.ErrInvalidQuery):
		return fiber.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, service.ErrIDRequired), errors.Is(err, service.ErrKeyRequired), errors.Is(err, service.ErrReaderNil):
		return fiber.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, service.ErrInvalidFileType):
		return fiber.StatusBadRequest, "INVALID_FILE_TYPE"
	case errors.Is(err, service.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.Is(err, service.ErrNotFound), errors.Is(err, storage.ErrObjectNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "TIMEOUT"
	case errors.As(err, &fe):
		return fe.Code, codeForStatus(fe.Code)
	}
	return fiber.StatusInternalServerError, "INTERNAL_ERROR"
}

func fail(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	return writeError(c, status, code, err.Error())
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ErrorHandler returns a Fiber global error handler that renders every error as a Result.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal server error"
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}
		if status == fiber.StatusNotFound && message == "Cannot "+c.Method()+" "+c.Path() {
			message = "resource not found"
		}
		return writeError(c, status, codeForStatus(status), message)
	}
}

// decodeStrict decodes a JSON body into v, rejecting unknown fields and trailing data.
func decodeStrict(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "request body is required")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body: unexpected trailing data")
	}
	return nil
}
