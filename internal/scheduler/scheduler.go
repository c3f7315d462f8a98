// Package scheduler runs the periodic watchlist refresh job.
package scheduler

import (
	"errors"

	"watchlist-screening/internal/logger"
	"watchlist-screening/internal/watchlist"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron   *cron.Cron
	loader *watchlist.Loader
	spec   string
}

// NewScheduler creates a scheduler that reloads the watchlist cache on the
// given cron spec (with seconds). An empty spec disables the job.
func NewScheduler(loader *watchlist.Loader, spec string) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		loader: loader,
		spec:   spec,
	}
}

func (s *Scheduler) Start() error {
	if s.spec == "" {
		logger.Info().Msg("watchlist refresh disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.loader.Reload(); err != nil {
			// In-flight runs keep the snapshot they started with; the health
			// endpoint reports a list that disappeared mid-flight.
			if errors.Is(err, watchlist.ErrMissing) {
				logger.Warn().Err(err).Msg("watchlist document disappeared, keeping cached snapshot")
				return
			}
			logger.Error().Err(err).Msg("watchlist refresh failed")
			return
		}
		logger.Debug().Int("entries", s.loader.Size()).Msg("watchlist refreshed")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("spec", s.spec).Msg("watchlist refresh scheduled")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
