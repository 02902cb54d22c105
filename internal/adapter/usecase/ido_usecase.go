package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

// IDOUseCase provides the business logic of the sale engine. It
// orchestrates the campaign repository, the token gateway and the event
// publisher to implement port.IDOUseCase.
//
// Every mutating call holds the campaign's in-process lock and runs inside
// one repository transaction. Transfers happen inside that transaction
// after the domain checks pass and before the ledger is updated, so a
// failed transfer rolls everything back.
type IDOUseCase struct {
	repo      port.CampaignRepository
	tokens    port.TokenGateway
	publisher port.EventPublisher
	logger    *slog.Logger
	clock     func() time.Time
	locks     *campaignLocks
}

// Option configures an IDOUseCase.
type Option func(*IDOUseCase)

// WithPublisher sets the event publisher. Without one events are only logged.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *IDOUseCase) { u.publisher = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *IDOUseCase) { u.logger = l }
}

// WithClock overrides the time source used for join windows and vesting.
func WithClock(clock func() time.Time) Option {
	return func(u *IDOUseCase) { u.clock = clock }
}

// NewIDOUseCase creates a new use case over repo and tokens.
func NewIDOUseCase(repo port.CampaignRepository, tokens port.TokenGateway, opts ...Option) *IDOUseCase {
	u := &IDOUseCase{
		repo:   repo,
		tokens: tokens,
		logger: slog.Default(),
		clock:  time.Now,
		locks:  newCampaignLocks(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign validates cfg and schedule and appends a pending campaign.
func (u *IDOUseCase) CreateCampaign(ctx context.Context, owner string, cfg domain.CampaignConfig, schedule domain.VestingSchedule) (*domain.Campaign, error) {
	c, err := domain.NewCampaign(owner, cfg, schedule, u.clock())
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("store campaign: %w", err)
	}
	u.emit(ctx, domain.Event{
		Type:       domain.EventCampaignCreated,
		CampaignID: c.ID,
		Actor:      owner,
		Asset:      c.AcquireAsset,
		Amount:     c.MaxGoal.String(),
	})
	return c, nil
}

// GetCampaign returns a campaign by id.
func (u *IDOUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// ListCampaigns returns campaigns ordered by id.
func (u *IDOUseCase) ListCampaigns(ctx context.Context, status *domain.Status) ([]*domain.Campaign, error) {
	return u.repo.List(ctx, status)
}

// Join pulls up to amount of the acquire asset from account. Requests
// larger than the remaining allocation or goal are trimmed to fit.
func (u *IDOUseCase) Join(ctx context.Context, campaignID int64, account string, amount *big.Int) (*big.Int, error) {
	if account == "" {
		return nil, domain.ErrInvalidAccount
	}
	defer u.locks.lock(campaignID)()

	var (
		now      = u.clock()
		accepted *big.Int
		asset    string
	)
	err := u.repo.Update(ctx, campaignID, account, func(ctx context.Context, c *domain.Campaign, contrib *domain.Contribution) error {
		got, err := c.CheckJoin(contrib, amount, now)
		if err != nil {
			return err
		}
		if err = u.tokens.Pull(ctx, c.AcquireAsset, account, got); err != nil {
			return fmt.Errorf("pull %s from %s: %w", c.AcquireAsset, account, err)
		}
		accepted, asset = got, c.AcquireAsset
		c.RecordJoin(contrib, got, now)
		return nil
	})
	if err != nil {
		if accepted != nil {
			u.compensate(ctx, "join", campaignID, func() error {
				return u.tokens.Push(ctx, asset, account, accepted)
			})
		}
		return nil, err
	}

	u.emit(ctx, domain.Event{
		Type:       domain.EventCampaignJoined,
		CampaignID: campaignID,
		Actor:      account,
		Asset:      asset,
		Amount:     accepted.String(),
	})
	return accepted, nil
}

// Approve resolves an ended campaign. On success the raised funds go to the
// campaign treasury; on failure they stay in custody for refunds.
func (u *IDOUseCase) Approve(ctx context.Context, campaignID int64, actor string) (domain.Status, error) {
	defer u.locks.lock(campaignID)()

	var (
		now      = u.clock()
		outcome  domain.Status
		raised   *big.Int
		asset    string
		treasury string
		pushed   bool
	)
	err := u.repo.Update(ctx, campaignID, "", func(ctx context.Context, c *domain.Campaign, _ *domain.Contribution) error {
		var err error
		if outcome, err = c.CheckApprove(now); err != nil {
			return err
		}
		raised, asset, treasury = new(big.Int).Set(c.Total), c.AcquireAsset, c.Treasury
		if outcome == domain.StatusClaiming && raised.Sign() > 0 {
			if err = u.tokens.Push(ctx, asset, treasury, raised); err != nil {
				return fmt.Errorf("push %s to treasury %s: %w", asset, treasury, err)
			}
			pushed = true
		}
		c.RecordApprove(outcome, now)
		return nil
	})
	if err != nil {
		if pushed {
			u.compensate(ctx, "approve", campaignID, func() error {
				return u.tokens.Reclaim(ctx, asset, treasury, raised)
			})
		}
		return "", err
	}

	u.emit(ctx, domain.Event{
		Type:       domain.EventCampaignApproved,
		CampaignID: campaignID,
		Actor:      actor,
		Asset:      asset,
		Amount:     raised.String(),
		Outcome:    outcome,
	})
	return outcome, nil
}

// Claim pays account the reward vested since the last claim.
func (u *IDOUseCase) Claim(ctx context.Context, campaignID int64, account string) (*big.Int, error) {
	return u.withdraw(ctx, campaignID, account, domain.EventCampaignClaimed,
		func(c *domain.Campaign, contrib *domain.Contribution, now time.Time) (string, *big.Int, error) {
			payable, err := c.Claimable(contrib, now)
			if err != nil {
				return "", nil, err
			}
			return c.RewardAsset, payable, nil
		},
		func(c *domain.Campaign, contrib *domain.Contribution, amount *big.Int, now time.Time) {
			c.RecordClaim(contrib, amount, now)
		})
}

// Refund returns account's unrefunded contribution in one transfer.
func (u *IDOUseCase) Refund(ctx context.Context, campaignID int64, account string) (*big.Int, error) {
	return u.withdraw(ctx, campaignID, account, domain.EventCampaignRefunded,
		func(c *domain.Campaign, contrib *domain.Contribution, _ time.Time) (string, *big.Int, error) {
			payable, err := c.Refundable(contrib)
			if err != nil {
				return "", nil, err
			}
			return c.AcquireAsset, payable, nil
		},
		func(c *domain.Campaign, contrib *domain.Contribution, _ *big.Int, now time.Time) {
			c.RecordRefund(contrib, now)
		})
}

type (
	quoteFn  func(c *domain.Campaign, contrib *domain.Contribution, now time.Time) (asset string, amount *big.Int, err error)
	recordFn func(c *domain.Campaign, contrib *domain.Contribution, amount *big.Int, now time.Time)
)

// withdraw is the shared flow of claim and refund: quote, push, record.
func (u *IDOUseCase) withdraw(ctx context.Context, campaignID int64, account string, typ domain.EventType, quote quoteFn, record recordFn) (*big.Int, error) {
	if account == "" {
		return nil, domain.ErrInvalidAccount
	}
	defer u.locks.lock(campaignID)()

	var (
		now    = u.clock()
		paid   *big.Int
		asset  string
		pushed bool
	)
	err := u.repo.Update(ctx, campaignID, account, func(ctx context.Context, c *domain.Campaign, contrib *domain.Contribution) error {
		var err error
		if asset, paid, err = quote(c, contrib, now); err != nil {
			return err
		}
		if err = u.tokens.Push(ctx, asset, account, paid); err != nil {
			return fmt.Errorf("push %s to %s: %w", asset, account, err)
		}
		pushed = true
		record(c, contrib, paid, now)
		return nil
	})
	if err != nil {
		if pushed {
			u.compensate(ctx, string(typ), campaignID, func() error {
				return u.tokens.Reclaim(ctx, asset, account, paid)
			})
		}
		return nil, err
	}

	u.emit(ctx, domain.Event{
		Type:       typ,
		CampaignID: campaignID,
		Actor:      account,
		Asset:      asset,
		Amount:     paid.String(),
	})
	return paid, nil
}

// GetPosition reports account's ledger entry together with what it could
// withdraw right now.
func (u *IDOUseCase) GetPosition(ctx context.Context, campaignID int64, account string) (*port.Position, error) {
	c, err := u.repo.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	contrib, err := u.repo.GetContribution(ctx, campaignID, account)
	if err != nil {
		return nil, err
	}

	pos := &port.Position{
		Contribution: contrib,
		Entitlement:  new(big.Int),
		Claimable:    new(big.Int),
		Refundable:   new(big.Int),
	}
	switch c.Status {
	case domain.StatusClaiming:
		pos.Entitlement = c.Entitlement(contrib.Contributed)
		if v, err := c.Claimable(contrib, u.clock()); err == nil {
			pos.Claimable = v
		}
	case domain.StatusRefunding:
		if v, err := c.Refundable(contrib); err == nil {
			pos.Refundable = v
		}
	}
	return pos, nil
}

// compensate reverses a transfer whose ledger update could not be stored.
func (u *IDOUseCase) compensate(ctx context.Context, op string, campaignID int64, reverse func() error) {
	if err := reverse(); err != nil {
		u.logger.Error("transfer compensation failed, custody out of sync with ledger",
			slog.String("op", op),
			slog.Int64("campaign_id", campaignID),
			slog.Any("error", err))
		return
	}
	u.logger.Warn("transfer reversed after failed ledger update",
		slog.String("op", op),
		slog.Int64("campaign_id", campaignID))
}

// emit stamps evt, logs it and hands it to the publisher. Publishing
// errors are logged only; the mutation is already committed.
func (u *IDOUseCase) emit(ctx context.Context, evt domain.Event) {
	evt.ID = uuid.NewString()
	evt.OccurredAt = u.clock().UTC()

	u.logger.Info(string(evt.Type),
		slog.String("event_id", evt.ID),
		slog.Int64("campaign_id", evt.CampaignID),
		slog.String("actor", evt.Actor),
		slog.String("amount", evt.Amount))

	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, evt); err != nil {
		u.logger.Error("publish event error",
			slog.String("event_id", evt.ID),
			slog.Any("error", err))
	}
}
