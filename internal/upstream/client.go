package upstream

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// NewHTTPClient — shared client for both sandboxes. Upstream calls are the
// only genuine suspension points in the process, so the timeout is a hard
// requirement: a stuck sandbox surfaces as an error, never a hung request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// The sandbox response shape is not fully specified; the QR payload has shown
// up under several names across revisions. Take the first present, non-empty
// known field.
var qrPayloadFields = []string{"qrCode", "qrcode", "qrCodeImage", "image"}

func qrFromBody(body map[string]any) string {
	for _, k := range qrPayloadFields {
		if s, ok := body[k].(string); ok && s != "" {
			return s
		}
	}
	log.Warn().Msg("upstream response carried no recognizable QR payload field")
	return ""
}

// sessionIDFrom extracts the upstream session id: last segment of the
// Location header, falling back to the qrcodeId body field.
func sessionIDFrom(resp *http.Response, body map[string]any) string {
	if loc := resp.Header.Get("Location"); loc != "" {
		parts := strings.Split(loc, "/")
		return parts[len(parts)-1]
	}
	if s, ok := body["qrcodeId"].(string); ok {
		return s
	}
	return ""
}

func decodeLoose(r io.Reader) map[string]any {
	body := map[string]any{}
	b, err := io.ReadAll(r)
	if err != nil || len(bytes.TrimSpace(b)) == 0 {
		return body
	}
	if err := json.Unmarshal(b, &body); err != nil {
		log.Warn().Err(err).Msg("upstream response is not a JSON object")
	}
	return body
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	return strings.TrimSpace(string(b))
}
