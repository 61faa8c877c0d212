package models

import (
	"strings"
	"time"
)

// PassStatus — lifecycle tag of an allow-list record
type PassStatus string

const (
	StatusActive PassStatus = "active"
)

// PassRecord — one allow-list row per issued visitor pass.
// This is both the wire shape and the flat-file row; the collaborator UI
// round-trips it as-is.
type PassRecord struct {
	ID         string     `json:"id"`
	PassID     string     `json:"pass_id"`
	Name       string     `json:"name"`
	PassStatus string     `json:"pass_status"`
	CreatedAt  time.Time  `json:"created_at"`
	IssueTime  string     `json:"issue_time,omitempty"`
	ExpiryDate string     `json:"expiry_date,omitempty"`
	Status     PassStatus `json:"status"`
}

// expiry_date arrives from the browser collaborator either as a plain date
// or as a full timestamp
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ExpiresAt parses expiry_date; ok=false when unset or unparseable
func (r PassRecord) ExpiresAt() (time.Time, bool) {
	s := strings.TrimSpace(r.ExpiryDate)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Expired reports whether the record is no longer valid at now.
// Records without a parseable expiry never expire.
func (r PassRecord) Expired(now time.Time) bool {
	t, ok := r.ExpiresAt()
	return ok && !t.After(now)
}
