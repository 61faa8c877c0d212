package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dwlab/visitor-pass-service/internal/models"
)

// Service implements the visitor-pass use cases: the issuance proxy, the
// allow-list lifecycle and the verification orchestrator.
type Service struct {
	allowlist Allowlist
	issuer    IssuerGateway
	verifier  VerifierGateway
	clock     Clock
	txids     TransactionIDs
}

func New(allowlist Allowlist, issuer IssuerGateway, verifier VerifierGateway, clock Clock, txids TransactionIDs) *Service {
	return &Service{allowlist: allowlist, issuer: issuer, verifier: verifier, clock: clock, txids: txids}
}

// IssueCredential — pure request/response translation to the upstream issuer.
// A failed issuance never touches the allow-list; the collaborator registers
// the entry via AddPass only after this reports success.
func (s *Service) IssueCredential(ctx context.Context, req CredentialRequest) (IssueResult, error) {
	sess, err := s.issuer.CreateCredentialQR(ctx, req)
	if err != nil {
		return IssueResult{}, err
	}
	log.Info().Str("pass_id", req.PassID).Str("transaction_id", sess.ID).Msg("credential issued")
	return IssueResult{QRCode: sess.QRCode, QRCodeURL: sess.QRCodeURL, TransactionID: sess.ID}, nil
}

// AddPass registers an allow-list entry. id may be client-assigned for
// display consistency; created_at and status are always server-assigned.
func (s *Service) AddPass(cmd AddPassCommand) models.PassRecord {
	rec := models.PassRecord{
		ID:         cmd.ID,
		PassID:     cmd.PassID,
		Name:       cmd.Name,
		PassStatus: cmd.PassStatus,
		CreatedAt:  s.clock.Now().UTC(),
		IssueTime:  cmd.IssueTime,
		ExpiryDate: cmd.ExpiryDate,
		Status:     models.StatusActive,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.allowlist.Insert(rec)
	log.Info().Str("pass_id", rec.PassID).Str("id", rec.ID).Msg("whitelist entry added")
	return rec
}

// ListPasses — eviction-then-read over the store
func (s *Service) ListPasses() []models.PassRecord {
	return s.allowlist.ListActive(s.clock.Now())
}

// RemovePass — operator-initiated cancellation; entries are removed outright
func (s *Service) RemovePass(id string) (models.PassRecord, error) {
	rec, err := s.allowlist.Remove(id)
	if err != nil {
		return models.PassRecord{}, err
	}
	log.Info().Str("pass_id", rec.PassID).Str("id", id).Msg("whitelist entry removed")
	return rec, nil
}

// SyncPasses merges a client-held cache into the store and returns the union
func (s *Service) SyncPasses(remote []models.PassRecord) []models.PassRecord {
	return s.allowlist.Sync(remote)
}

// SweepExpired — explicit eviction pass, used by the timer worker
func (s *Service) SweepExpired() int {
	return s.allowlist.Sweep(s.clock.Now())
}

// VerifyPass — synchronous single-shot check used outside the polling flow.
// Mirrors the original behavior of cleaning up expired entries before lookup.
func (s *Service) VerifyPass(cmd VerifyCommand) (models.PassRecord, error) {
	now := s.clock.Now()
	s.allowlist.Sweep(now)
	return s.reconcile(cmd.PassID, cmd.Name, cmd.PassStatus, now)
}

// StartVerification opens an upstream verification session. Failure here is
// terminal for the attempt; no session is considered open.
func (s *Service) StartVerification(ctx context.Context) (StartVerificationResult, error) {
	txID := s.txids.New()
	sess, err := s.verifier.CreateVerificationQR(ctx, txID)
	if err != nil {
		return StartVerificationResult{}, err
	}
	if sess.ID == "" {
		// upstream did not echo a session id; fall back to our token
		sess.ID = txID
	}
	log.Info().Str("transaction_id", sess.ID).Msg("verification session started")
	return StartVerificationResult{
		QRCode:        sess.QRCode,
		QRCodeURL:     sess.QRCodeURL,
		TransactionID: sess.ID,
		Ref:           sess.Ref,
	}, nil
}

// PollVerification fetches the upstream result for one poll step and, when a
// credential was presented, reconciles its claims against the allow-list.
// Reconciliation failures are reported as status=failed, not as errors.
func (s *Service) PollVerification(ctx context.Context, transactionID string) (PollResult, error) {
	out, err := s.verifier.FetchResult(ctx, transactionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return PollResult{Status: StatusFailed, Message: ErrSessionNotFound.Error()}, nil
		}
		return PollResult{}, err
	}

	switch out.Status {
	case StatusPending:
		return PollResult{Status: StatusPending}, nil
	case StatusFailed:
		return PollResult{Status: StatusFailed, Message: out.Message}, nil
	}

	claims := out.Claims
	if _, err := s.reconcile(claims["pass_id"], claims["name"], claims["pass_status"], s.clock.Now()); err != nil {
		log.Info().Str("transaction_id", transactionID).Str("pass_id", claims["pass_id"]).
			Str("reason", err.Error()).Msg("verification rejected")
		return PollResult{Status: StatusFailed, Message: err.Error()}, nil
	}
	log.Info().Str("transaction_id", transactionID).Str("pass_id", claims["pass_id"]).Msg("verification completed")
	// the reconciled claim set, not the stored record, is the verified identity
	return PollResult{Status: StatusCompleted, Claims: claims}, nil
}

// reconcile checks a claimed identity against the allow-list in fixed order:
// existence, expiry, name, status. The first failing check is reported alone.
func (s *Service) reconcile(passID, name, passStatus string, now time.Time) (models.PassRecord, error) {
	rec, err := s.allowlist.FindActiveByPassID(passID)
	if err != nil {
		return models.PassRecord{}, ErrNotWhitelisted
	}
	if rec.Expired(now) {
		return models.PassRecord{}, ErrPassExpired
	}
	if rec.Name != name {
		return models.PassRecord{}, ErrNameMismatch
	}
	if rec.PassStatus != passStatus {
		return models.PassRecord{}, ErrStatusMismatch
	}
	return rec, nil
}
