package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dwlab/visitor-pass-service/internal/http/dto"
	issvc "github.com/dwlab/visitor-pass-service/internal/service"
)

// IssueCredential — proxy to the upstream issuer
// @Summary     Issue a visitor-pass credential
// @Tags        credentials
// @Accept      json
// @Produce     json
// @Param       request body dto.IssueCredentialRequest true "Credential fields"
// @Success     200 {object} dto.IssueCredentialResponse
// @Failure     400 {object} Envelope
// @Failure     502 {object} Envelope
// @Router      /issue-credential [post]
func IssueCredential(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.IssueCredentialRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, Envelope{Success: false, Message: "malformed request"})
		}
		if err := req.Validate(); err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		res, err := svc.IssueCredential(c.Request().Context(), req.ToCommand())
		if err != nil {
			status, body := MapError(err)
			body.Message = "credential issuance failed: " + body.Message
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusOK, dto.FromIssueResult(res))
	}
}

// GenerateVerificationQR — open an upstream verification session
// @Summary     Start a verification session
// @Tags        verification
// @Produce     json
// @Success     200 {object} dto.GenerateVerificationQRResponse
// @Failure     502 {object} Envelope
// @Router      /generate-verification-qr [post]
func GenerateVerificationQR(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := svc.StartVerification(c.Request().Context())
		if err != nil {
			status, body := MapError(err)
			body.Message = "verification QR generation failed: " + body.Message
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusOK, dto.FromStartVerification(res))
	}
}

// VerificationResult — one poll step against the open session
// @Summary     Poll a verification result
// @Tags        verification
// @Produce     json
// @Param       transactionId path string true "Transaction id"
// @Success     200 {object} dto.VerificationResultResponse
// @Failure     502 {object} Envelope
// @Router      /verification-result/{transactionId} [get]
func VerificationResult(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		txID := strings.TrimSpace(c.Param("transactionId"))
		if txID == "" {
			return writeJSON(c, http.StatusBadRequest, Envelope{Success: false, Message: "transactionId required"})
		}
		res, err := svc.PollVerification(c.Request().Context(), txID)
		if err != nil {
			status, body := MapError(err)
			body.Message = "verification result lookup failed: " + body.Message
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusOK, dto.FromPollResult(res))
	}
}
