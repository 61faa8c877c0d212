package service

import (
	"errors"
	"fmt"
)

// Reconciliation and lookup failures carry their user-facing message as the
// error text; the HTTP layer folds them into {success:false, message}.
var (
	ErrNotFound        = errors.New("pass not found")
	ErrNotWhitelisted  = errors.New("pass_id not in whitelist or expired")
	ErrPassExpired     = errors.New("pass expired")
	ErrNameMismatch    = errors.New("name mismatch")
	ErrStatusMismatch  = errors.New("pass status mismatch")
	ErrSessionNotFound = errors.New("verification session not found")
)

// UpstreamError — non-2xx or transport failure talking to a sandbox API
type UpstreamError struct {
	Op     string // "issuer" or "verifier"
	Status int    // 0 on transport failure
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s API error: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s API error: %d - %s", e.Op, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
