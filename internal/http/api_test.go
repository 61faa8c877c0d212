package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dwlab/visitor-pass-service/internal/config"
	ih "github.com/dwlab/visitor-pass-service/internal/http"
	"github.com/dwlab/visitor-pass-service/internal/repo"
)

// fake sandboxes standing in for the issuer and verifier APIs
func newSandboxes(t *testing.T) (issuer, verifier *httptest.Server) {
	t.Helper()
	issuer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/api/qrcode/issued-1")
		_ = json.NewEncoder(w).Encode(map[string]any{"qrCode": "issued-qr"})
	}))
	t.Cleanup(issuer.Close)

	verifier = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Location", "/api/qrcode/vsess-1")
			_ = json.NewEncoder(w).Encode(map[string]any{"qrCode": "verify-qr"})
			return
		}
		// every poll hits an unknown session in these tests
		http.NotFound(w, r)
	}))
	t.Cleanup(verifier.Close)
	return issuer, verifier
}

func newAPI(t *testing.T) *echo.Echo {
	t.Helper()
	issuer, verifier := newSandboxes(t)
	cfg := config.Config{
		WhitelistFile:       filepath.Join(t.TempDir(), "whitelist.json"),
		IssuerAPIURL:        issuer.URL,
		IssuerAccessToken:   "i-token",
		VCTemplateCode:      "tpl-001",
		VerifierAPIURL:      verifier.URL,
		VerifierAccessToken: "v-token",
		VPCode:              "VP01",
		VPRef:               "REF01",
		UpstreamTimeout:     2 * time.Second,
	}
	store := repo.NewStore(cfg.WhitelistFile)
	return ih.Router(store, cfg)
}

func do(t *testing.T, e *echo.Echo, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec, out
}

func addEntry(t *testing.T, e *echo.Echo, passID, name, status, expiry string) map[string]any {
	t.Helper()
	rec, out := do(t, e, http.MethodPost, "/api/whitelist", map[string]any{
		"pass_id":     passID,
		"name":        name,
		"pass_status": status,
		"expiry_date": expiry,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	return out["data"].(map[string]any)
}

func TestWhitelistLifecycle(t *testing.T) {
	e := newAPI(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	data := addEntry(t, e, "ACC001", "王小明", "VIP", tomorrow)
	require.NotEmpty(t, data["id"])
	require.Equal(t, "active", data["status"])

	rec, out := do(t, e, http.MethodGet, "/api/whitelist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, out["data"].([]any), 1)

	rec, out = do(t, e, http.MethodDelete, "/api/whitelist/"+data["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])

	// deleting again is a soft failure, not an HTTP error
	rec, out = do(t, e, http.MethodDelete, "/api/whitelist/"+data["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, out["success"])

	// and the pass no longer verifies
	_, out = do(t, e, http.MethodPost, "/api/verify-whitelist", map[string]any{
		"pass_id": "ACC001", "name": "王小明", "pass_status": "VIP",
	})
	require.Equal(t, false, out["success"])
}

func TestVerifyWhitelistScenarios(t *testing.T) {
	e := newAPI(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	addEntry(t, e, "ACC001", "王小明", "VIP", tomorrow)

	rec, out := do(t, e, http.MethodPost, "/api/verify-whitelist", map[string]any{
		"pass_id": "ACC001", "name": "王小明", "pass_status": "VIP",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])

	_, out = do(t, e, http.MethodPost, "/api/verify-whitelist", map[string]any{
		"pass_id": "ACC001", "name": "李四", "pass_status": "VIP",
	})
	require.Equal(t, false, out["success"])
	require.Contains(t, out["message"], "name mismatch")

	_, out = do(t, e, http.MethodPost, "/api/verify-whitelist", map[string]any{
		"pass_id": "ACC001", "name": "王小明", "pass_status": "guest",
	})
	require.Equal(t, false, out["success"])
	require.Contains(t, out["message"], "status mismatch")
}

func TestVerifyWhitelistExpiredEntry(t *testing.T) {
	e := newAPI(t)
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	addEntry(t, e, "ACC001", "王小明", "VIP", yesterday)

	rec, out := do(t, e, http.MethodPost, "/api/verify-whitelist", map[string]any{
		"pass_id": "ACC001", "name": "王小明", "pass_status": "VIP",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, out["success"])
}

func TestWhitelistValidation(t *testing.T) {
	e := newAPI(t)

	rec, out := do(t, e, http.MethodPost, "/api/whitelist", map[string]any{"name": "王小明"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, out["success"])
	require.Contains(t, out["message"], "pass_id")
}

func TestWhitelistSync(t *testing.T) {
	e := newAPI(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	addEntry(t, e, "ACC001", "王小明", "VIP", tomorrow)

	rec, out := do(t, e, http.MethodPost, "/api/whitelist/sync", map[string]any{
		"records": []map[string]any{
			{"id": "c-1", "pass_id": "ACC001", "name": "王小明", "pass_status": "VIP", "status": "active"},
			{"id": "c-2", "pass_id": "ACC002", "name": "李四", "pass_status": "guest", "status": "active"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, out["data"].([]any), 2)
}

func TestIssueCredential(t *testing.T) {
	e := newAPI(t)

	// missing fields are rejected before any upstream call
	rec, out := do(t, e, http.MethodPost, "/api/issue-credential", map[string]any{"name": "王小明"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, out["success"])

	rec, out = do(t, e, http.MethodPost, "/api/issue-credential", map[string]any{
		"name":        "王小明",
		"birth_date":  "0900101",
		"id_number":   "A123456789",
		"pass_status": "VIP",
		"pass_id":     "ACC001",
		"issueDate":   "2025-11-04",
		"expiryDate":  "2025-11-05",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, "issued-qr", out["qrCode"])
	require.Equal(t, "issued-1", out["transactionId"])
}

func TestGenerateVerificationQRAndUnknownPoll(t *testing.T) {
	e := newAPI(t)

	rec, out := do(t, e, http.MethodPost, "/api/generate-verification-qr", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, "verify-qr", out["qrCode"])
	require.Equal(t, "vsess-1", out["transactionId"])
	require.Equal(t, "REF01", out["ref"])

	// polling an unknown session never crashes; it reports an explicit failure
	rec, out = do(t, e, http.MethodGet, "/api/verification-result/never-started", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, out["success"])
	require.Equal(t, "failed", out["status"])
	require.Contains(t, out["message"], "verification session not found")
}
