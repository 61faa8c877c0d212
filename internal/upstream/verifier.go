package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dwlab/visitor-pass-service/internal/models"
	issvc "github.com/dwlab/visitor-pass-service/internal/service"
)

// VerifierClient — adapter for the sandbox credential verifier, implementing
// the service.VerifierGateway port.
type VerifierClient struct {
	baseURL     string
	accessToken string
	vpCode      string // verification presentation code
	ref         string // configured reference echoed to the sandbox
	http        *http.Client
}

func NewVerifierClient(baseURL, accessToken, vpCode, ref string, hc *http.Client) *VerifierClient {
	return &VerifierClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		vpCode:      vpCode,
		ref:         ref,
		http:        hc,
	}
}

type verifyPayload struct {
	VPUid string `json:"vpUid"`
	Ref   string `json:"ref"`
}

// CreateVerificationQR opens an upstream verification session correlated with
// transactionID and relays the QR the holder scans.
func (c *VerifierClient) CreateVerificationQR(ctx context.Context, transactionID string) (issvc.QRSession, error) {
	b, err := json.Marshal(verifyPayload{VPUid: c.vpCode + "_" + transactionID, Ref: c.ref})
	if err != nil {
		return issvc.QRSession{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/qrcode/data", bytes.NewReader(b))
	if err != nil {
		return issvc.QRSession{}, err
	}
	httpReq.Header.Set("Access-Token", c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return issvc.QRSession{}, &issvc.UpstreamError{Op: "verifier", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return issvc.QRSession{}, &issvc.UpstreamError{Op: "verifier", Status: resp.StatusCode, Body: readBody(resp.Body)}
	}

	body := decodeLoose(resp.Body)
	id := sessionIDFrom(resp, body)
	sess := issvc.QRSession{ID: id, QRCode: qrFromBody(body), Ref: c.ref}
	if id != "" {
		sess.QRCodeURL = c.baseURL + "/api/qrcode/" + id
	}
	return sess, nil
}

// FetchResult performs one poll step against the upstream session.
// 204/empty ⇒ pending, 404/410 ⇒ service.ErrSessionNotFound, other non-2xx ⇒
// UpstreamError. The body is treated as a loosely-typed document.
func (c *VerifierClient) FetchResult(ctx context.Context, transactionID string) (issvc.VerificationOutcome, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/vp/result/"+transactionID, nil)
	if err != nil {
		return issvc.VerificationOutcome{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return issvc.VerificationOutcome{}, &issvc.UpstreamError{Op: "verifier", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return issvc.VerificationOutcome{Status: issvc.StatusPending}, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return issvc.VerificationOutcome{}, issvc.ErrSessionNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return issvc.VerificationOutcome{}, &issvc.UpstreamError{Op: "verifier", Status: resp.StatusCode, Body: readBody(resp.Body)}
	}

	body := decodeLoose(resp.Body)
	if len(body) == 0 {
		// session open, holder has not presented yet
		return issvc.VerificationOutcome{Status: issvc.StatusPending}, nil
	}
	return outcomeFromBody(body), nil
}

// outcomeFromBody maps the loose result document onto a VerificationOutcome.
// The sandbox has reported success as verifyResult:true or status:"completed"
// across revisions, and failure details under resultDescription or message.
func outcomeFromBody(body map[string]any) issvc.VerificationOutcome {
	status, _ := body["status"].(string)
	if vr, ok := body["verifyResult"].(bool); ok {
		if vr {
			status = "completed"
		} else {
			status = "failed"
		}
	}

	switch status {
	case "completed", "success":
		return issvc.VerificationOutcome{Status: issvc.StatusCompleted, Claims: claimsFrom(body["data"])}
	case "failed":
		return issvc.VerificationOutcome{Status: issvc.StatusFailed, Message: failureMessage(body)}
	default:
		return issvc.VerificationOutcome{Status: issvc.StatusPending}
	}
}

func failureMessage(body map[string]any) string {
	for _, k := range []string{"resultDescription", "message"} {
		if s, ok := body[k].(string); ok && s != "" {
			return s
		}
	}
	return "verification failed"
}

// claimsFrom extracts presented-credential claims. The sandbox returns either
// a field list in the issuance shape ({ename, content}) or a flat object.
func claimsFrom(data any) models.Claims {
	claims := models.Claims{}
	switch v := data.(type) {
	case []any:
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["ename"].(string)
			if name == "" {
				name, _ = m["name"].(string)
			}
			if name == "" {
				continue
			}
			if content, ok := m["content"].(string); ok {
				claims[name] = content
			} else if value, ok := m["value"].(string); ok {
				claims[name] = value
			}
		}
	case map[string]any:
		for k, e := range v {
			switch val := e.(type) {
			case string:
				claims[k] = val
			case float64, bool:
				claims[k] = fmt.Sprint(val)
			}
		}
	}
	return claims
}
