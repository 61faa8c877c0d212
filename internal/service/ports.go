package service

import (
	"context"
	"time"

	"github.com/dwlab/visitor-pass-service/internal/models"
)

// Clock — time abstraction for testability
type Clock interface {
	Now() time.Time
}

// TransactionIDs — source of correlation tokens for upstream sessions
type TransactionIDs interface {
	New() string
}

// Allowlist — port over the pass-record store
type Allowlist interface {
	Insert(rec models.PassRecord)
	ListActive(now time.Time) []models.PassRecord
	FindActiveByPassID(passID string) (models.PassRecord, error)
	Remove(id string) (models.PassRecord, error)
	Sweep(now time.Time) int
	Sync(remote []models.PassRecord) []models.PassRecord
}

// IssuerGateway — upstream sandbox that mints the scannable credential
type IssuerGateway interface {
	CreateCredentialQR(ctx context.Context, req CredentialRequest) (QRSession, error)
}

// VerifierGateway — upstream sandbox that validates presented credentials
type VerifierGateway interface {
	CreateVerificationQR(ctx context.Context, transactionID string) (QRSession, error)
	FetchResult(ctx context.Context, transactionID string) (VerificationOutcome, error)
}

// CredentialRequest — fields the collaborator fills in for issuance.
// Dates are local-calendar strings exactly as entered; the gateway reshapes
// them for the upstream wire format.
type CredentialRequest struct {
	Name       string
	BirthDate  string
	IDNumber   string
	PassStatus string
	PassID     string
	IssueDate  string
	ExpiryDate string
}

// QRSession — what an upstream "create QR" call yields
type QRSession struct {
	ID        string
	QRCode    string
	QRCodeURL string
	Ref       string
}

// VerificationStatus — per-poll state of a verification attempt
type VerificationStatus string

const (
	StatusPending   VerificationStatus = "pending"
	StatusCompleted VerificationStatus = "completed"
	StatusFailed    VerificationStatus = "failed"
)

// VerificationOutcome — one upstream poll result before reconciliation
type VerificationOutcome struct {
	Status  VerificationStatus
	Claims  models.Claims
	Message string
}

// AddPassCommand — allow-list entry as supplied by the collaborator
type AddPassCommand struct {
	ID         string
	PassID     string
	Name       string
	PassStatus string
	IssueTime  string
	ExpiryDate string
}

// VerifyCommand — single-shot allow-list check
type VerifyCommand struct {
	PassID     string
	Name       string
	PassStatus string
}

type IssueResult struct {
	QRCode        string
	QRCodeURL     string
	TransactionID string
}

type StartVerificationResult struct {
	QRCode        string
	QRCodeURL     string
	TransactionID string
	Ref           string
}

// PollResult — reconciled state reported back to the polling caller
type PollResult struct {
	Status  VerificationStatus
	Claims  models.Claims
	Message string
}
