package http

import (
	"errors"
	"net/http"

	"github.com/dwlab/visitor-pass-service/internal/http/dto"
	issvc "github.com/dwlab/visitor-pass-service/internal/service"
)

// MapError translates domain/DTO errors into an HTTP status and the
// {success:false, message} envelope. Domain outcomes (not found, mismatch)
// stay 200 by design: the browser collaborator switches on success, not on
// status codes. Validation is 400, upstream trouble 502.
func MapError(err error) (int, Envelope) {
	var ue *issvc.UpstreamError

	switch {
	case errors.Is(err, dto.ErrInvalid):
		return http.StatusBadRequest, Envelope{Success: false, Message: err.Error()}

	case errors.Is(err, issvc.ErrNotFound),
		errors.Is(err, issvc.ErrNotWhitelisted),
		errors.Is(err, issvc.ErrPassExpired),
		errors.Is(err, issvc.ErrNameMismatch),
		errors.Is(err, issvc.ErrStatusMismatch):
		return http.StatusOK, Envelope{Success: false, Message: err.Error()}

	case errors.As(err, &ue):
		return http.StatusBadGateway, Envelope{Success: false, Message: ue.Error()}
	}
	return http.StatusInternalServerError, Envelope{Success: false, Message: "internal error"}
}
