package dto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is the base of every request-validation error; the HTTP layer
// matches on it to produce a 400 before any upstream call happens.
var ErrInvalid = errors.New("invalid request")

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s required", ErrInvalid, field)
	}
	return nil
}

// Validate — every issuance field is required, non-empty
func (r IssueCredentialRequest) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", r.Name},
		{"birth_date", r.BirthDate},
		{"id_number", r.IDNumber},
		{"pass_status", r.PassStatus},
		{"pass_id", r.PassID},
		{"issueDate", r.IssueDate},
		{"expiryDate", r.ExpiryDate},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Validate — identity fields must be present; expiry_date may be absent
// (an entry without one never expires)
func (r AddPassRequest) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"pass_id", r.PassID},
		{"name", r.Name},
		{"pass_status", r.PassStatus},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (r VerifyPassRequest) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"pass_id", r.PassID},
		{"name", r.Name},
		{"pass_status", r.PassStatus},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}
