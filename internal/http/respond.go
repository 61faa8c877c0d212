package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope — the {success, message} shape every non-payload response resolves
// to; no stack traces ever cross this boundary.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(c echo.Context, status int, v any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(status, v)
}

func DefaultHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		_ = writeJSON(c, he.Code, Envelope{Success: false, Message: http.StatusText(he.Code)})
		return
	}
	_ = writeJSON(c, http.StatusInternalServerError, Envelope{Success: false, Message: "internal error"})
}
