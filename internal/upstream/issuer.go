package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	issvc "github.com/dwlab/visitor-pass-service/internal/service"
)

// IssuerClient — adapter for the sandbox credential issuer, implementing the
// service.IssuerGateway port.
type IssuerClient struct {
	baseURL     string
	accessToken string
	vcUID       string // credential template identifier
	http        *http.Client
}

func NewIssuerClient(baseURL, accessToken, vcUID string, hc *http.Client) *IssuerClient {
	return &IssuerClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		vcUID:       vcUID,
		http:        hc,
	}
}

type issueField struct {
	EName   string `json:"ename"`
	Content string `json:"content"`
}

type issuePayload struct {
	VCUid        string       `json:"vcUid"`
	IssuanceDate string       `json:"issuanceDate"`
	ExpiredDate  string       `json:"expiredDate"`
	Fields       []issueField `json:"fields"`
}

// CreateCredentialQR builds the issuer payload and relays the QR session the
// sandbox returns.
func (c *IssuerClient) CreateCredentialQR(ctx context.Context, req issvc.CredentialRequest) (issvc.QRSession, error) {
	payload := issuePayload{
		VCUid:        c.vcUID,
		IssuanceDate: compactDate(req.IssueDate),
		ExpiredDate:  compactDate(req.ExpiryDate),
		Fields: []issueField{
			{EName: "name", Content: req.Name},
			{EName: "roc_birthday", Content: req.BirthDate},
			{EName: "id_number", Content: req.IDNumber},
			{EName: "pass_status", Content: req.PassStatus},
			{EName: "pass_id", Content: req.PassID},
			{EName: "issueDate", Content: req.IssueDate},
			{EName: "expiryDate", Content: req.ExpiryDate},
		},
	}
	b, err := json.Marshal(payload)
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
		return issvc.QRSession{}, &issvc.UpstreamError{Op: "issuer", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return issvc.QRSession{}, &issvc.UpstreamError{Op: "issuer", Status: resp.StatusCode, Body: readBody(resp.Body)}
	}

	body := decodeLoose(resp.Body)
	id := sessionIDFrom(resp, body)
	sess := issvc.QRSession{ID: id, QRCode: qrFromBody(body)}
	if id != "" {
		sess.QRCodeURL = c.baseURL + "/api/qrcode/" + id
	}
	return sess, nil
}

// compactDate turns 2025-11-04 into the sandbox's 20251104 wire format
func compactDate(d string) string {
	return strings.ReplaceAll(d, "-", "")
}
