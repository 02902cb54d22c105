package domain

import (
	"math/big"
	"time"
)

// Status is the lifecycle state of a campaign. Pending is the only
// non-terminal state; approve moves it to Claiming or Refunding exactly once.
type Status string

const (
	StatusPending   Status = "pending"
	StatusClaiming  Status = "claiming"
	StatusRefunding Status = "refunding"
)

// MaxDecimals bounds the precision descriptors accepted at creation.
const MaxDecimals = 36

// CampaignConfig is the caller-supplied part of a campaign. Amounts are in
// acquire-asset base units; Price is acquire units per reward unit scaled by
// Scale.
type CampaignConfig struct {
	MinAllocation   *big.Int
	MaxAllocation   *big.Int
	MinGoal         *big.Int
	MaxGoal         *big.Int
	Price           *big.Int
	StartTime       time.Time
	EndTime         time.Time
	AcquireAsset    string
	RewardAsset     string
	AcquireDecimals uint8
	RewardDecimals  uint8
	// Treasury receives the raised funds on success. Empty means the owner.
	Treasury string
}

// Validate checks the configuration invariants.
func (c CampaignConfig) Validate() error {
	for name, v := range map[string]*big.Int{
		"min allocation": c.MinAllocation,
		"max allocation": c.MaxAllocation,
		"min goal":       c.MinGoal,
		"max goal":       c.MaxGoal,
		"price":          c.Price,
	} {
		if v == nil || v.Sign() < 0 {
			return invalidConfig("%s must be non-negative", name)
		}
	}
	switch {
	case c.Price.Sign() == 0:
		return invalidConfig("price must be positive")
	case c.MaxAllocation.Sign() == 0:
		return invalidConfig("max allocation must be positive")
	case c.MaxGoal.Sign() == 0:
		return invalidConfig("max goal must be positive")
	case c.MinAllocation.Cmp(c.MaxAllocation) > 0:
		return invalidConfig("min allocation exceeds max allocation")
	case c.MinGoal.Cmp(c.MaxGoal) > 0:
		return invalidConfig("min goal exceeds max goal")
	case !c.StartTime.Before(c.EndTime):
		return invalidConfig("start time must be before end time")
	case c.AcquireAsset == "" || c.RewardAsset == "":
		return invalidConfig("acquire and reward assets are required")
	case c.AcquireAsset == c.RewardAsset:
		return invalidConfig("acquire and reward assets must differ")
	case c.AcquireDecimals > MaxDecimals || c.RewardDecimals > MaxDecimals:
		return invalidConfig("decimals must not exceed %d", MaxDecimals)
	}
	return nil
}

// Campaign is one fundraising round: its configuration, running total,
// lifecycle status and vesting schedule. The contribution ledger is kept
// per contributor in Contribution records.
type Campaign struct {
	CampaignConfig

	ID         int64
	Owner      string
	Total      *big.Int
	Status     Status
	ResolvedAt time.Time
	Vesting    VestingSchedule
	CreatedAt  time.Time
}

// NewCampaign validates cfg and schedule and returns a pending campaign
// with a zero total. The ID is assigned by the registry.
func NewCampaign(owner string, cfg CampaignConfig, schedule VestingSchedule, now time.Time) (*Campaign, error) {
	if owner == "" {
		return nil, invalidConfig("owner is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if cfg.Treasury == "" {
		cfg.Treasury = owner
	}
	return &Campaign{
		CampaignConfig: cfg,
		Owner:          owner,
		Total:          new(big.Int),
		Status:         StatusPending,
		Vesting:        schedule.Clone(),
		CreatedAt:      now.UTC(),
	}, nil
}

// Resolution reports the terminal outcome and the instant it was reached.
// ok is false while the campaign is pending.
func (c *Campaign) Resolution() (outcome Status, at time.Time, ok bool) {
	if c.Status == StatusPending {
		return StatusPending, time.Time{}, false
	}
	return c.Status, c.ResolvedAt, true
}

// JoinOpen reports whether now falls inside the half-open join window of a
// pending campaign.
func (c *Campaign) JoinOpen(now time.Time) bool {
	return c.Status == StatusPending && !now.Before(c.StartTime) && now.Before(c.EndTime)
}

// CheckJoin computes how much of requested the contributor may deposit.
// A request larger than the remaining headroom is silently trimmed; only
// exhausted headroom is an error. Nothing is mutated.
func (c *Campaign) CheckJoin(contrib *Contribution, requested *big.Int, now time.Time) (*big.Int, error) {
	if !c.JoinOpen(now) {
		return nil, ErrNotJoinPeriod
	}
	if requested == nil || requested.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	remainingUser := new(big.Int).Sub(c.MaxAllocation, contrib.Contributed)
	if remainingUser.Sign() <= 0 {
		return nil, ErrAllocationExhausted
	}
	remainingGoal := new(big.Int).Sub(c.MaxGoal, c.Total)
	if remainingGoal.Sign() <= 0 {
		return nil, ErrGoalReached
	}
	// The minimum applies to a first deposit and only while there is headroom.
	if contrib.Contributed.Sign() == 0 && requested.Cmp(c.MinAllocation) < 0 {
		return nil, ErrBelowMinAllocation
	}
	return minInt(requested, remainingUser, remainingGoal), nil
}

// RecordJoin books an accepted deposit.
func (c *Campaign) RecordJoin(contrib *Contribution, amount *big.Int, now time.Time) {
	c.Total = new(big.Int).Add(c.Total, amount)
	contrib.Contributed = new(big.Int).Add(contrib.Contributed, amount)
	contrib.touch(now)
}

// CheckApprove returns the outcome approve would resolve to at now.
func (c *Campaign) CheckApprove(now time.Time) (Status, error) {
	if c.Status != StatusPending {
		return "", ErrAlreadyResolved
	}
	if now.Before(c.EndTime) {
		return "", ErrTooEarly
	}
	if c.Total.Cmp(c.MinGoal) >= 0 {
		return StatusClaiming, nil
	}
	return StatusRefunding, nil
}

// RecordApprove fixes the outcome. It must follow a successful CheckApprove.
func (c *Campaign) RecordApprove(outcome Status, now time.Time) {
	c.Status = outcome
	c.ResolvedAt = now.UTC()
}

// Entitlement is the total reward owed for contributed.
func (c *Campaign) Entitlement(contributed *big.Int) *big.Int {
	return Entitlement(contributed, c.Price, c.AcquireDecimals, c.RewardDecimals)
}

// Claimable returns the reward amount the contributor can withdraw at now.
// ErrAllClaimed means no later call can succeed; ErrNothingToClaim means
// vesting has not advanced since the last claim.
func (c *Campaign) Claimable(contrib *Contribution, now time.Time) (*big.Int, error) {
	outcome, resolvedAt, _ := c.Resolution()
	if outcome != StatusClaiming {
		return nil, ErrNotClaimable
	}
	if contrib.Contributed.Sign() == 0 {
		return nil, ErrNothingToClaim
	}
	entitlement := c.Entitlement(contrib.Contributed)
	if contrib.Settled.Cmp(entitlement) >= 0 {
		return nil, ErrAllClaimed
	}
	vested := c.Vesting.Vested(entitlement, now.Sub(resolvedAt))
	payable := vested.Sub(vested, contrib.Settled)
	if payable.Sign() <= 0 {
		return nil, ErrNothingToClaim
	}
	return payable, nil
}

// RecordClaim books a reward withdrawal.
func (c *Campaign) RecordClaim(contrib *Contribution, amount *big.Int, now time.Time) {
	contrib.Settled = new(big.Int).Add(contrib.Settled, amount)
	contrib.touch(now)
}

// Refundable returns the unrefunded part of the contribution.
func (c *Campaign) Refundable(contrib *Contribution) (*big.Int, error) {
	if c.Status != StatusRefunding {
		return nil, ErrNotRefundable
	}
	payable := new(big.Int).Sub(contrib.Contributed, contrib.Settled)
	if payable.Sign() <= 0 {
		return nil, ErrNothingToRefund
	}
	return payable, nil
}

// RecordRefund marks the whole contribution as returned.
func (c *Campaign) RecordRefund(contrib *Contribution, now time.Time) {
	contrib.Settled = new(big.Int).Set(contrib.Contributed)
	contrib.touch(now)
}

// Clone returns a deep copy of the campaign.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	cp.MinAllocation = new(big.Int).Set(c.MinAllocation)
	cp.MaxAllocation = new(big.Int).Set(c.MaxAllocation)
	cp.MinGoal = new(big.Int).Set(c.MinGoal)
	cp.MaxGoal = new(big.Int).Set(c.MaxGoal)
	cp.Price = new(big.Int).Set(c.Price)
	cp.Total = new(big.Int).Set(c.Total)
	cp.Vesting = c.Vesting.Clone()
	return &cp
}

func minInt(first *big.Int, rest ...*big.Int) *big.Int {
	m := first
	for _, v := range rest {
		if v.Cmp(m) < 0 {
			m = v
		}
	}
	return new(big.Int).Set(m)
}
