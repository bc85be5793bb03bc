// Package watcher re-checks the daily challenge condition on a fixed
// interval so a trophy is granted shortly after its last eligible
// task is completed, without the evaluator itself owning any timer.
package watcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/focuskit/go-focus-app/internal/dates"
	"github.com/focuskit/go-focus-app/internal/services"
)

type Config struct {
	// Interval between condition checks.
	Interval time.Duration

	// ResetGuard is how long checks stay suspended after a reset, so
	// a stale in-flight evaluation cannot instantly re-grant.
	ResetGuard time.Duration
}

func DefaultConfig() Config {
	return Config{
		Interval:   2 * time.Second,
		ResetGuard: 5 * time.Second,
	}
}

type Watcher struct {
	logger     zerolog.Logger
	challenges services.ChallengeService
	clock      dates.Clock
	cfg        Config

	mu             sync.Mutex
	suspendedUntil time.Time
}

func New(
	logger zerolog.Logger,
	challengeService services.ChallengeService,
	clock dates.Clock,
	cfg Config,
) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.ResetGuard <= 0 {
		cfg.ResetGuard = DefaultConfig().ResetGuard
	}

	return &Watcher{
		logger:     logger,
		challenges: challengeService,
		clock:      clock,
		cfg:        cfg,
	}
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.logger.Info().
		Dur("interval", w.cfg.Interval).
		Msg("acquisition watcher started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("acquisition watcher stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick runs one poll iteration. Exposed so tests can drive the
// watcher without real time.
func (w *Watcher) Tick(ctx context.Context) {
	if w.Suspended() {
		return
	}

	// Already granted today: nothing to poll for until the day rolls
	// over or the grant is reset.
	if w.challenges.IsAcquiredToday(ctx) {
		return
	}

	result, err := w.challenges.AcquireIfEligible(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNoChallenge) {
			w.logger.Error().
				Err(err).
				Msg("acquisition check failed")
		}
		return
	}
	if result != nil {
		w.logger.Info().
			Str("trophy_id", result.AcquiredTrophy.TrophyID).
			Msg("watcher granted daily challenge trophy")
	}
}

// Suspend arms the reset guard window.
func (w *Watcher) Suspend() {
	w.mu.Lock()
	w.suspendedUntil = w.clock.Now().Add(w.cfg.ResetGuard)
	w.mu.Unlock()

	w.logger.Debug().
		Dur("guard", w.cfg.ResetGuard).
		Msg("acquisition checks suspended")
}

func (w *Watcher) Suspended() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.clock.Now().Before(w.suspendedUntil)
}
