package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

// Resolver approves pending campaigns whose join window has closed, so
// outcomes do not wait for someone to call approve by hand.
type Resolver struct {
	svc    port.IDOUseCase
	actor  string
	logger *slog.Logger
	clock  func() time.Time
	// timeout bounds one sweep.
	timeout time.Duration
}

// NewResolver returns a resolver that approves as actor.
func NewResolver(svc port.IDOUseCase, actor string, logger *slog.Logger) *Resolver {
	return &Resolver{
		svc:     svc,
		actor:   actor,
		logger:  logger,
		clock:   time.Now,
		timeout: time.Minute,
	}
}

// Sweep approves every ended pending campaign and returns how many were
// resolved. Failures on one campaign do not stop the sweep.
func (r *Resolver) Sweep(ctx context.Context) (int, error) {
	pending := domain.StatusPending
	campaigns, err := r.svc.ListCampaigns(ctx, &pending)
	if err != nil {
		return 0, fmt.Errorf("list pending campaigns: %w", err)
	}

	now := r.clock()
	resolved := 0
	for _, c := range campaigns {
		if now.Before(c.EndTime) {
			continue
		}
		outcome, err := r.svc.Approve(ctx, c.ID, r.actor)
		switch {
		case errors.Is(err, domain.ErrAlreadyResolved):
			// approved concurrently by a user
		case err != nil:
			r.logger.Error("auto-approve error",
				slog.Int64("campaign_id", c.ID),
				slog.Any("error", err))
		default:
			resolved++
			r.logger.Info("campaign auto-approved",
				slog.Int64("campaign_id", c.ID),
				slog.String("outcome", string(outcome)))
		}
	}
	return resolved, nil
}

// Start schedules Sweep with spec, a six-field cron expression or a
// descriptor such as "@every 1m", and starts the scheduler. Stop the
// returned cron to halt it.
func (r *Resolver) Start(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if _, err := r.Sweep(ctx); err != nil {
			r.logger.Error("resolver sweep error", slog.Any("error", err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule resolver %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
