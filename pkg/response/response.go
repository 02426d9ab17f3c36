package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the common part of every API response body. Endpoint payloads
// embed it so each route returns an explicit schema instead of an ad hoc map.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// OK builds a success envelope for embedding in endpoint payloads.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// AppError is a workflow error that maps to an HTTP status and a
// user-visible message. Fields optionally names the offending input fields.
type AppError struct {
	HTTPStatus int
	Message    string
	Fields     []string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidation reports missing or malformed input.
func NewValidation(message string, fields ...string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: message, Fields: fields}
}

// NewConflict reports a uniqueness violation. This API reports conflicts as
// 400 rather than 409; clients key off the message.
func NewConflict(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: message}
}

// NewNotFound reports a referenced entity that does not exist. Reported as
// 400 everywhere for consistency with the auth and membership contracts.
func NewNotFound(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Message: message}
}

// NewUnavailable reports a storage connection failure.
func NewUnavailable(message string) *AppError {
	return &AppError{HTTPStatus: http.StatusServiceUnavailable, Message: message}
}

// Success sends a 200 OK response with the given payload.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created sends a 201 Created response with the given payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// Error translates err into an envelope. AppErrors keep their status and
// message; anything else becomes a generic 500. Internal error detail is only
// exposed while Gin runs in debug mode.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Envelope{
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	message := "Terjadi kesalahan pada server"
	if gin.IsDebugging() {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Envelope{Message: message})
}
