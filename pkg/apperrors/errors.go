// Package apperrors defines the domain error taxonomy. Services raise these
// at the point of detection; the API error handler translates them to HTTP.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Error struct {
	Status  int    // HTTP status ที่ boundary จะใช้ตอบ
	Label   string // error kind label ใน response body
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *Error {
	return &Error{
		Status:  fiber.StatusNotFound,
		Label:   "Not Found",
		Message: fmt.Sprintf(format, args...),
	}
}

func Conflict(format string, args ...any) *Error {
	return &Error{
		Status:  fiber.StatusConflict,
		Label:   "Conflict",
		Message: fmt.Sprintf(format, args...),
	}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{
		Status:  fiber.StatusUnauthorized,
		Label:   "Unauthorized",
		Message: fmt.Sprintf(format, args...),
	}
}

func Validation(format string, args ...any) *Error {
	return &Error{
		Status:  fiber.StatusBadRequest,
		Label:   "Bad Request",
		Message: fmt.Sprintf(format, args...),
	}
}

// IsNotFound ตรวจว่า err เป็น Not Found หรือไม่ (ใช้ใน handler/test)
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == fiber.StatusNotFound
}
