package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dwlab/visitor-pass-service/internal/http/dto"
	issvc "github.com/dwlab/visitor-pass-service/internal/service"
)

// AddPass — register an allow-list entry
// @Summary     Add a whitelist entry
// @Tags        whitelist
// @Accept      json
// @Produce     json
// @Param       request body dto.AddPassRequest true "Pass record"
// @Success     200 {object} dto.PassResponse
// @Failure     400 {object} Envelope
// @Router      /whitelist [post]
func AddPass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.AddPassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, Envelope{Success: false, Message: "malformed request"})
		}
		if err := req.Validate(); err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		rec := svc.AddPass(req.ToCommand())
		return writeJSON(c, http.StatusOK, dto.FromPass(rec))
	}
}

// ListPasses — evicts expired entries, then returns the remainder
// @Summary     List whitelist entries
// @Tags        whitelist
// @Produce     json
// @Success     200 {object} dto.PassListResponse
// @Router      /whitelist [get]
func ListPasses(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return writeJSON(c, http.StatusOK, dto.FromPassList(svc.ListPasses()))
	}
}

// RemovePass — cancellation; a missing id is a soft failure, not a 404
// @Summary     Remove a whitelist entry
// @Tags        whitelist
// @Produce     json
// @Param       id path string true "Record id"
// @Success     200 {object} dto.PassResponse
// @Router      /whitelist/{id} [delete]
func RemovePass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			return writeJSON(c, http.StatusBadRequest, Envelope{Success: false, Message: "id required"})
		}
		rec, err := svc.RemovePass(id)
		if err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusOK, dto.FromPass(rec))
	}
}

// SyncPasses — merge a client-held cache into the store
// @Summary     Merge client records into the whitelist
// @Tags        whitelist
// @Accept      json
// @Produce     json
// @Param       request body dto.SyncPassesRequest true "Client-held records"
// @Success     200 {object} dto.PassListResponse
// @Router      /whitelist/sync [post]
func SyncPasses(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SyncPassesRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, Envelope{Success: false, Message: "malformed request"})
		}
		return writeJSON(c, http.StatusOK, dto.FromPassList(svc.SyncPasses(req.Records)))
	}
}

// VerifyPass — synchronous allow-list check outside the polling flow
// @Summary     Verify a pass against the whitelist
// @Tags        whitelist
// @Accept      json
// @Produce     json
// @Param       request body dto.VerifyPassRequest true "Claimed identity"
// @Success     200 {object} dto.PassResponse
// @Failure     400 {object} Envelope
// @Router      /verify-whitelist [post]
func VerifyPass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.VerifyPassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, Envelope{Success: false, Message: "malformed request"})
		}
		if err := req.Validate(); err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		rec, err := svc.VerifyPass(req.ToCommand())
		if err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		res := dto.FromPass(rec)
		res.Message = "verification passed"
		return writeJSON(c, http.StatusOK, res)
	}
}
