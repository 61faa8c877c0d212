package util

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewTransactionID returns a UUIDv4 token correlating a local request with an
// upstream sandbox session. google/uuid draws from crypto/rand.
func NewTransactionID() string {
	return uuid.NewString()
}

// NewPassID builds a business pass id of the form ACCYYYYMMDDNNNNNN
func NewPassID(now time.Time, seq int) string {
	return fmt.Sprintf("ACC%s%06d", now.Format("20060102"), seq)
}
