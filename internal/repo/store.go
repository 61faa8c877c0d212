package repo

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dwlab/visitor-pass-service/internal/models"
	"github.com/dwlab/visitor-pass-service/internal/service"
)

// Store — flat-file adapter implementing the service.Allowlist port.
// The whole collection lives in memory and is mirrored to a single JSON array
// on disk; every mutation rewrites the file wholesale via temp-file+rename so
// readers never observe a partial write.
type Store struct {
	mu      sync.Mutex
	path    string
	records []models.PassRecord
}

// NewStore loads the collection from path. A missing file starts empty; an
// unreadable or corrupt file is logged and treated as empty rather than fatal.
func NewStore(path string) *Store {
	s := &Store{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("whitelist file unreadable, starting empty")
		}
		return s
	}
	if err := json.Unmarshal(b, &s.records); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("whitelist file corrupt, starting empty")
		s.records = nil
	}
	return s
}

// Ping — readiness check: the directory holding the file must exist
func (s *Store) Ping() error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

// Insert appends the record and persists. Append-only: duplicate pass_id
// values are not rejected here.
func (s *Store) Insert(rec models.PassRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	s.persistLocked()
}

// ListActive evicts expired records, persists if anything was removed, and
// returns the remainder.
func (s *Store) ListActive(now time.Time) []models.PassRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(now)
	out := make([]models.PassRecord, len(s.records))
	copy(out, s.records)
	return out
}

// FindActiveByPassID returns the first record with the given pass_id and
// status active, or service.ErrNotFound. Expiry is left to the caller so it
// can distinguish "expired" from "absent".
func (s *Store) FindActiveByPassID(passID string) (models.PassRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.PassID == passID && r.Status == models.StatusActive {
			return r, nil
		}
	}
	return models.PassRecord{}, service.ErrNotFound
}

// Remove deletes by id and returns the removed record for confirmation
func (s *Store) Remove(id string) (models.PassRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persistLocked()
			return r, nil
		}
	}
	return models.PassRecord{}, service.ErrNotFound
}

// Sweep removes expired records, returns how many went away
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(now)
}

// Sync merges a client-held collection into the server one and persists the
// union. Returns the resulting collection. Merge may both admit remote-only
// records and collapse local duplicates, so the result is always taken as-is;
// a length comparison cannot tell the two apart.
func (s *Store) Sync(remote []models.PassRecord) []models.PassRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = Merge(s.records, remote)
	s.persistLocked()
	out := make([]models.PassRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Merge unions two collections, treating records as the same when pass_id AND
// name are equal. The first-seen copy wins; conflicting fields between a
// "same" pair are not reconciled. id alone never deduplicates.
func Merge(local, remote []models.PassRecord) []models.PassRecord {
	type key struct{ passID, name string }
	seen := make(map[key]struct{}, len(local)+len(remote))
	out := make([]models.PassRecord, 0, len(local)+len(remote))
	for _, r := range local {
		k := key{r.PassID, r.Name}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	for _, r := range remote {
		k := key{r.PassID, r.Name}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

func (s *Store) evictLocked(now time.Time) int {
	kept := s.records[:0]
	for _, r := range s.records {
		if !r.Expired(now) {
			kept = append(kept, r)
		}
	}
	removed := len(s.records) - len(kept)
	s.records = kept
	if removed > 0 {
		s.persistLocked()
	}
	return removed
}

// persistLocked rewrites the whole file atomically. A write failure degrades
// to in-memory-only operation with a logged warning; in-memory and on-disk
// state may then diverge until the next successful write.
func (s *Store) persistLocked() {
	records := s.records
	if records == nil {
		records = []models.PassRecord{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("whitelist marshal failed, keeping in-memory state only")
		return
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".whitelist-*")
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("whitelist write failed, keeping in-memory state only")
		return
	}
	name := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		log.Warn().Err(err).Str("path", s.path).Msg("whitelist write failed, keeping in-memory state only")
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		log.Warn().Err(err).Str("path", s.path).Msg("whitelist write failed, keeping in-memory state only")
		return
	}
	if err := os.Rename(name, s.path); err != nil {
		_ = os.Remove(name)
		log.Warn().Err(err).Str("path", s.path).Msg("whitelist replace failed, keeping in-memory state only")
	}
}
