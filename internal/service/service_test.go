package service_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dwlab/visitor-pass-service/internal/models"
	"github.com/dwlab/visitor-pass-service/internal/repo"
	"github.com/dwlab/visitor-pass-service/internal/service"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqTxIDs struct{ n int }

func (s *seqTxIDs) New() string {
	s.n++
	return fmt.Sprintf("tx-%04d", s.n)
}

type fakeIssuer struct {
	req  service.CredentialRequest
	sess service.QRSession
	err  error
}

func (f *fakeIssuer) CreateCredentialQR(_ context.Context, req service.CredentialRequest) (service.QRSession, error) {
	f.req = req
	return f.sess, f.err
}

type fakeVerifier struct {
	startedWith string
	sess        service.QRSession
	startErr    error
	outcome     service.VerificationOutcome
	fetchErr    error
}

func (f *fakeVerifier) CreateVerificationQR(_ context.Context, txID string) (service.QRSession, error) {
	f.startedWith = txID
	return f.sess, f.startErr
}

func (f *fakeVerifier) FetchResult(_ context.Context, _ string) (service.VerificationOutcome, error) {
	return f.outcome, f.fetchErr
}

type fixture struct {
	svc      *service.Service
	store    *repo.Store
	issuer   *fakeIssuer
	verifier *fakeVerifier
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    repo.NewStore(filepath.Join(t.TempDir(), "whitelist.json")),
		issuer:   &fakeIssuer{},
		verifier: &fakeVerifier{},
		now:      time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC),
	}
	f.svc = service.New(f.store, f.issuer, f.verifier, fixedClock{f.now}, &seqTxIDs{})
	return f
}

func (f *fixture) addPass(passID, name, status, expiry string) models.PassRecord {
	return f.svc.AddPass(service.AddPassCommand{
		PassID:     passID,
		Name:       name,
		PassStatus: status,
		ExpiryDate: expiry,
	})
}

func claims(passID, name, status string) models.Claims {
	return models.Claims{"pass_id": passID, "name": name, "pass_status": status}
}

func TestAddPassAssignsServerFields(t *testing.T) {
	f := newFixture(t)
	rec := f.addPass("ACC001", "王小明", "VIP", "2025-11-05")

	require.NotEmpty(t, rec.ID)
	require.Equal(t, f.now, rec.CreatedAt)
	require.Equal(t, models.StatusActive, rec.Status)

	got := f.svc.ListPasses()
	require.Len(t, got, 1)
	require.Equal(t, rec.ID, got[0].ID)
}

func TestVerifyPassHappyPath(t *testing.T) {
	f := newFixture(t)
	f.addPass("ACC001", "王小明", "VIP", "2025-11-05")

	rec, err := f.svc.VerifyPass(service.VerifyCommand{PassID: "ACC001", Name: "王小明", PassStatus: "VIP"})
	require.NoError(t, err)
	require.Equal(t, "ACC001", rec.PassID)
}

func TestVerifyPassFailureOrder(t *testing.T) {
	f := newFixture(t)
	f.addPass("ACC001", "王小明", "VIP", "2025-11-05")

	tests := []struct {
		name string
		cmd  service.VerifyCommand
		want error
	}{
		{"unknown pass_id", service.VerifyCommand{PassID: "ACC999", Name: "王小明", PassStatus: "VIP"}, service.ErrNotWhitelisted},
		{"name checked before status", service.VerifyCommand{PassID: "ACC001", Name: "李四", PassStatus: "guest"}, service.ErrNameMismatch},
		{"status mismatch", service.VerifyCommand{PassID: "ACC001", Name: "王小明", PassStatus: "guest"}, service.ErrStatusMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.VerifyPass(tc.cmd)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerifyPassExpiredEntryNeverSucceeds(t *testing.T) {
	f := newFixture(t)
	f.addPass("ACC001", "王小明", "VIP", "2025-11-03")

	_, err := f.svc.VerifyPass(service.VerifyCommand{PassID: "ACC001", Name: "王小明", PassStatus: "VIP"})
	// the pre-lookup sweep removes the row, so it reads as absent
	require.ErrorIs(t, err, service.ErrNotWhitelisted)
}

func TestPollVerificationCompletedEchoesClaims(t *testing.T) {
	f := newFixture(t)
	f.addPass("ACC001", "王小明", "VIP", "2025-11-05")
	f.verifier.outcome = service.VerificationOutcome{
		Status: service.StatusCompleted,
		Claims: claims("ACC001", "王小明", "VIP"),
	}

	res, err := f.svc.PollVerification(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Equal(t, service.StatusCompleted, res.Status)
	require.Equal(t, "王小明", res.Claims["name"])
}

func TestPollVerificationReconciliationOrder(t *testing.T) {
	f := newFixture(t)
	f.addPass("ACC001", "王小明", "VIP", "2025-11-05")

	tests := []struct {
		name    string
		claims  models.Claims
		message string
	}{
		{"absent", claims("ACC404", "王小明", "VIP"), service.ErrNotWhitelisted.Error()},
		{"name and status both wrong reports name first", claims("ACC001", "李四", "guest"), service.ErrNameMismatch.Error()},
		{"status wrong", claims("ACC001", "王小明", "guest"), service.ErrStatusMismatch.Error()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f.verifier.outcome = service.VerificationOutcome{Status: service.StatusCompleted, Claims: tc.claims}
			res, err := f.svc.PollVerification(context.Background(), "tx-1")
			require.NoError(t, err)
			require.Equal(t, service.StatusFailed, res.Status)
			require.Equal(t, tc.message, res.Message)
		})
	}
}

func TestPollVerificationExpiredEntry(t *testing.T) {
	f := newFixture(t)
	f.addPass("ACC001", "王小明", "VIP", "2025-11-03")
	f.verifier.outcome = service.VerificationOutcome{
		Status: service.StatusCompleted,
		Claims: claims("ACC001", "王小明", "VIP"),
	}

	// no sweep ran on this path, so the row is still present and reads expired
	res, err := f.svc.PollVerification(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Equal(t, service.StatusFailed, res.Status)
	require.Equal(t, service.ErrPassExpired.Error(), res.Message)
}

func TestPollVerificationPassThrough(t *testing.T) {
	f := newFixture(t)

	f.verifier.outcome = service.VerificationOutcome{Status: service.StatusPending}
	res, err := f.svc.PollVerification(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Equal(t, service.StatusPending, res.Status)

	f.verifier.outcome = service.VerificationOutcome{Status: service.StatusFailed, Message: "holder declined"}
	res, err = f.svc.PollVerification(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Equal(t, service.StatusFailed, res.Status)
	require.Equal(t, "holder declined", res.Message)
}

func TestPollVerificationUnknownSession(t *testing.T) {
	f := newFixture(t)
	f.verifier.fetchErr = service.ErrSessionNotFound

	res, err := f.svc.PollVerification(context.Background(), "never-started")
	require.NoError(t, err)
	require.Equal(t, service.StatusFailed, res.Status)
	require.Equal(t, service.ErrSessionNotFound.Error(), res.Message)
}

func TestStartVerificationUsesGeneratedTransactionID(t *testing.T) {
	f := newFixture(t)
	f.verifier.sess = service.QRSession{ID: "up-123", QRCode: "qr-data", Ref: "REF01"}

	res, err := f.svc.StartVerification(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, f.verifier.startedWith)
	require.Equal(t, "up-123", res.TransactionID)
	require.Equal(t, "REF01", res.Ref)
}

func TestStartVerificationFallsBackToLocalID(t *testing.T) {
	f := newFixture(t)
	f.verifier.sess = service.QRSession{QRCode: "qr-data"}

	res, err := f.svc.StartVerification(context.Background())
	require.NoError(t, err)
	require.Equal(t, f.verifier.startedWith, res.TransactionID)
}

func TestIssueCredentialFailureLeavesAllowlistUntouched(t *testing.T) {
	f := newFixture(t)
	f.issuer.err = &service.UpstreamError{Op: "issuer", Status: 500, Body: "boom"}

	_, err := f.svc.IssueCredential(context.Background(), service.CredentialRequest{PassID: "ACC001"})
	require.Error(t, err)
	require.Empty(t, f.svc.ListPasses())
}

func TestIssueCredentialRelaysSession(t *testing.T) {
	f := newFixture(t)
	f.issuer.sess = service.QRSession{ID: "qr-9", QRCode: "payload", QRCodeURL: "http://issuer/api/qrcode/qr-9"}

	res, err := f.svc.IssueCredential(context.Background(), service.CredentialRequest{
		Name: "王小明", PassID: "ACC001", IssueDate: "2025-11-04", ExpiryDate: "2025-11-05",
	})
	require.NoError(t, err)
	require.Equal(t, "qr-9", res.TransactionID)
	require.Equal(t, "payload", res.QRCode)
	require.Equal(t, "ACC001", f.issuer.req.PassID)
}
