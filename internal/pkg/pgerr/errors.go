package pgerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidSelection = "INVALID_SELECTION"
	CodeDataLoadFailed   = "DATA_LOAD_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInvalidSelection is returned when a comparison cannot be made on the filtered records.
	ErrInvalidSelection = New(fiber.StatusUnprocessableEntity, CodeInvalidSelection, "invalid selection: the comparison cannot be made on the filtered records")

	// ErrDataLoadFailed is returned when the dataset is unavailable.
	ErrDataLoadFailed = New(fiber.StatusServiceUnavailable, CodeDataLoadFailed, "dataset could not be loaded")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type PenguinError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *PenguinError {
	return &PenguinError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e PenguinError) Msg(format string, parts ...any) *PenguinError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e PenguinError) WithExtras(extras Extras) *PenguinError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *PenguinError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *PenguinError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
