package sweep

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type allowlist interface {
	Sweep(now time.Time) int
}

// Sweeper evicts expired allow-list records on a fixed schedule, so expiry is
// enforced even without read traffic.
type Sweeper struct {
	store allowlist
	cron  *cron.Cron
	spec  string
}

func New(store allowlist, spec string) *Sweeper {
	return &Sweeper{store: store, cron: cron.New(), spec: spec}
}

// Start runs one sweep immediately, then on every tick of the schedule
func (s *Sweeper) Start() error {
	s.run()
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) run() {
	if n := s.store.Sweep(time.Now()); n > 0 {
		log.Info().Int("removed", n).Msg("expired whitelist entries swept")
	}
}
