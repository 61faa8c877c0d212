package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthzResponse struct {
	Status string `json:"status"`
}
type ReadyzResponse struct {
	Status string `json:"status"`
}

// Healthz liveness.
// @Summary     Liveness probe
// @Tags        meta
// @Produce     json
// @Success     200 {object} HealthzResponse
// @Router      /healthz [get]
func Healthz(c echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthzResponse{Status: "ok"})
}

type storePinger interface {
	Ping() error
}

// Readyz readiness (whitelist storage reachable).
// @Summary     Readiness probe
// @Tags        meta
// @Produce     json
// @Success     200 {object} ReadyzResponse
// @Failure     503 {object} Envelope
// @Router      /readyz [get]
func Readyz(store storePinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(); err != nil {
			return writeJSON(c, http.StatusServiceUnavailable, Envelope{Success: false, Message: "storage not ready"})
		}
		return writeJSON(c, http.StatusOK, ReadyzResponse{Status: "ready"})
	}
}

// JSONBinder enforces the JSON content type. Unknown fields are allowed: the
// browser collaborator round-trips records with extra display-only fields.
type JSONBinder struct{}

func (JSONBinder) Bind(i interface{}, c echo.Context) error {
	if ct := c.Request().Header.Get(echo.HeaderContentType); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != echo.MIMEApplicationJSON {
			return echo.ErrUnsupportedMediaType
		}
	}
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return err
	}
	return nil
}
