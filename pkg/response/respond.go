package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform wrapper every endpoint responds with. Status is
// either "success" or "error"; Data carries the payload, Message carries the
// human-readable failure reason. A composite failure carries both.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 success envelope around payload.
func Success(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Status: "success", Data: payload})
}

// Created writes a 201 success envelope around payload.
func Created(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Status: "success", Data: payload})
}

// Error writes an error envelope with the given HTTP status and message.
func Error(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Status: "error", Message: message})
}

// ErrorWithData writes a composite error envelope: the request failed partway
// but data was already persisted, and the caller needs it to reconcile state.
func ErrorWithData(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Envelope{Status: "error", Message: message, Data: data})
}
