package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-ido/internal/adapter/badgerstore"
	"hermes-ido/internal/adapter/ledger"
	"hermes-ido/internal/config/configs"
	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
	"hermes-ido/internal/db"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type harness struct {
	svc    *IDOUseCase
	ledger *ledger.Ledger
	clock  *fakeClock
	repo   *failingCommits
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	bdb, err := db.NewBadger(configs.Badger{InMemory: true}, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })

	h := &harness{
		ledger: ledger.New("ido"),
		clock:  &fakeClock{now: t0},
		repo:   &failingCommits{CampaignRepository: badgerstore.NewCampaignRepository(bdb)},
	}
	h.svc = NewIDOUseCase(h.repo, h.ledger,
		WithLogger(quietLogger()), WithClock(h.clock.Now))
	return h
}

var errCommit = errors.New("commit failed")

// failingCommits discards the next n updates after fn succeeded, the way a
// store that loses its commit would.
type failingCommits struct {
	port.CampaignRepository

	mu sync.Mutex
	n  int
}

func (f *failingCommits) failNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n = n
}

func (f *failingCommits) Update(ctx context.Context, id int64, account string, fn port.UpdateFn) error {
	return f.CampaignRepository.Update(ctx, id, account, func(ctx context.Context, c *domain.Campaign, contrib *domain.Contribution) error {
		if err := fn(ctx, c, contrib); err != nil {
			return err
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.n > 0 {
			f.n--
			return errCommit
		}
		return nil
	})
}

// fund mints n tokens to each account and approves custody for all of it.
func (h *harness) fund(t *testing.T, asset string, amount *big.Int, accounts ...string) {
	t.Helper()
	ctx := context.Background()
	for _, a := range accounts {
		require.NoError(t, h.ledger.Mint(ctx, asset, a, amount))
		require.NoError(t, h.ledger.Approve(ctx, asset, a, amount))
	}
}

func (h *harness) balance(t *testing.T, asset, holder string) string {
	t.Helper()
	v, err := h.ledger.BalanceOf(context.Background(), asset, holder)
	require.NoError(t, err)
	return v.String()
}

func (h *harness) create(t *testing.T, cfg domain.CampaignConfig) *domain.Campaign {
	t.Helper()
	c, err := h.svc.CreateCampaign(context.Background(), "owner", cfg, testSchedule())
	require.NoError(t, err)
	return c
}

func TestCampaignIDsAreSequential(t *testing.T) {
	h := newHarness(t)
	for want := int64(0); want < 3; want++ {
		c := h.create(t, testConfig())
		assert.Equal(t, want, c.ID)
	}
	all, err := h.svc.ListCampaigns(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSuccessfulSaleWithVesting(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())
	h.fund(t, "token", units(2000), "addr1", "addr2", "addr3", "addr4")

	_, err := h.svc.Join(ctx, c.ID, "addr1", units(1000))
	assert.ErrorIs(t, err, domain.ErrNotJoinPeriod)

	h.clock.Set(c.StartTime)
	joins := []struct {
		account   string
		requested int64
		accepted  int64
	}{
		{"addr1", 2000, 1000},
		{"addr2", 500, 500},
		{"addr2", 750, 500},
		{"addr3", 1000, 1000},
		{"addr4", 1000, 1000},
	}
	for _, j := range joins {
		got, err := h.svc.Join(ctx, c.ID, j.account, units(j.requested))
		require.NoError(t, err, j.account)
		assert.Equal(t, units(j.accepted).String(), got.String(), j.account)
	}
	_, err = h.svc.Join(ctx, c.ID, "addr3", units(1000))
	assert.ErrorIs(t, err, domain.ErrAllocationExhausted)
	_, err = h.svc.Join(ctx, c.ID, "owner", units(1000))
	assert.ErrorIs(t, err, domain.ErrGoalReached)

	assert.Equal(t, units(1000).String(), h.balance(t, "token", "addr1"))
	assert.Equal(t, units(4000).String(), h.balance(t, "token", "ido"))

	_, err = h.svc.Approve(ctx, c.ID, "owner")
	assert.ErrorIs(t, err, domain.ErrTooEarly)

	h.clock.Set(c.EndTime)
	outcome, err := h.svc.Approve(ctx, c.ID, "anyone")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClaiming, outcome)
	assert.Equal(t, units(4000).String(), h.balance(t, "token", "owner"))

	_, err = h.svc.Approve(ctx, c.ID, "owner")
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	_, err = h.svc.Refund(ctx, c.ID, "addr1")
	assert.ErrorIs(t, err, domain.ErrNotRefundable)

	require.NoError(t, h.ledger.Mint(ctx, "reward", "ido", units(4000)))

	_, err = h.svc.Claim(ctx, c.ID, "addr1")
	assert.ErrorIs(t, err, domain.ErrNothingToClaim)

	h.clock.Set(c.EndTime.Add(24 * time.Hour))
	got, err := h.svc.Claim(ctx, c.ID, "addr1")
	require.NoError(t, err)
	assert.Equal(t, units(250).String(), got.String())
	_, err = h.svc.Claim(ctx, c.ID, "addr1")
	assert.ErrorIs(t, err, domain.ErrNothingToClaim)

	h.clock.Set(c.EndTime.Add(72 * time.Hour))
	got, err = h.svc.Claim(ctx, c.ID, "addr1")
	require.NoError(t, err)
	assert.Equal(t, units(750).String(), got.String())
	_, err = h.svc.Claim(ctx, c.ID, "addr1")
	assert.ErrorIs(t, err, domain.ErrAllClaimed)

	_, err = h.svc.Claim(ctx, c.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrNothingToClaim)

	assert.Equal(t, units(1000).String(), h.balance(t, "reward", "addr1"))

	pos, err := h.svc.GetPosition(ctx, c.ID, "addr1")
	require.NoError(t, err)
	assert.Equal(t, units(1000).String(), pos.Contribution.Settled.String())
	assert.Equal(t, 0, pos.Claimable.Sign())
}

func TestDifferentDecimalsEntitlement(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	cfg := testConfig()
	cfg.Price = new(big.Int).Div(units(1), big.NewInt(2))
	cfg.RewardDecimals = 17
	c := h.create(t, cfg)
	h.fund(t, "token", units(1000), "a", "b")

	h.clock.Set(c.StartTime)
	_, err := h.svc.Join(ctx, c.ID, "a", units(1000))
	require.NoError(t, err)
	_, err = h.svc.Join(ctx, c.ID, "b", units(1000))
	require.NoError(t, err)

	h.clock.Set(c.EndTime)
	_, err = h.svc.Approve(ctx, c.ID, "owner")
	require.NoError(t, err)

	pos, err := h.svc.GetPosition(ctx, c.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, units(20000).String(), pos.Entitlement.String())
}

func TestFailedSaleRefunds(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())
	h.fund(t, "token", units(2000), "addr1", "addr2")

	h.clock.Set(c.StartTime)
	for _, a := range []string{"addr1", "addr2"} {
		_, err := h.svc.Join(ctx, c.ID, a, units(500))
		require.NoError(t, err)
	}

	h.clock.Set(c.EndTime)
	outcome, err := h.svc.Approve(ctx, c.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunding, outcome)
	assert.Equal(t, "0", h.balance(t, "token", "owner"))

	got, err := h.svc.Refund(ctx, c.ID, "addr1")
	require.NoError(t, err)
	assert.Equal(t, units(500).String(), got.String())
	assert.Equal(t, units(2000).String(), h.balance(t, "token", "addr1"))

	_, err = h.svc.Refund(ctx, c.ID, "addr1")
	assert.ErrorIs(t, err, domain.ErrNothingToRefund)
	_, err = h.svc.Claim(ctx, c.ID, "addr2")
	assert.ErrorIs(t, err, domain.ErrNotClaimable)
	_, err = h.svc.Refund(ctx, c.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrNothingToRefund)

	pos, err := h.svc.GetPosition(ctx, c.ID, "addr2")
	require.NoError(t, err)
	assert.Equal(t, units(500).String(), pos.Refundable.String())
}

// TestUnfundedClaimKeepsLedger covers a reward push that fails because
// custody was never funded: nothing may be recorded.
func TestUnfundedClaimKeepsLedger(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())
	h.fund(t, "token", units(1000), "a", "b")

	h.clock.Set(c.StartTime)
	for _, a := range []string{"a", "b"} {
		_, err := h.svc.Join(ctx, c.ID, a, units(1000))
		require.NoError(t, err)
	}
	h.clock.Set(c.EndTime)
	_, err := h.svc.Approve(ctx, c.ID, "owner")
	require.NoError(t, err)

	h.clock.Set(c.EndTime.Add(72 * time.Hour))
	_, err = h.svc.Claim(ctx, c.ID, "a")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	pos, err := h.svc.GetPosition(ctx, c.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, pos.Contribution.Settled.Sign())
	assert.Equal(t, units(1000).String(), pos.Claimable.String())
}

func TestJoinWithoutAllowanceKeepsLedger(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())
	require.NoError(t, h.ledger.Mint(ctx, "token", "a", units(1000)))

	h.clock.Set(c.StartTime)
	_, err := h.svc.Join(ctx, c.ID, "a", units(500))
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)

	got, err := h.svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total.Sign())
}

func TestUnknownCampaign(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Join(context.Background(), 42, "a", units(1))
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	_, err = h.svc.GetCampaign(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

// TestConcurrentJoinsRespectGoal ensures racing contributors never push the
// total past the max goal and that custody holds exactly the total.
func TestConcurrentJoinsRespectGoal(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())

	accounts := make([]string, 10)
	for i := range accounts {
		accounts[i] = fmt.Sprintf("addr%d", i)
	}
	h.fund(t, "token", units(1000), accounts...)
	h.clock.Set(c.StartTime)

	var wg sync.WaitGroup
	wg.Add(len(accounts))
	for _, a := range accounts {
		go func(account string) {
			defer wg.Done()
			_, _ = h.svc.Join(ctx, c.ID, account, units(700))
		}(a)
	}
	wg.Wait()

	got, err := h.svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, units(4000).String(), got.Total.String())
	assert.Equal(t, units(4000).String(), h.balance(t, "token", "ido"))

	sum := new(big.Int)
	for _, a := range accounts {
		pos, err := h.svc.GetPosition(ctx, c.ID, a)
		require.NoError(t, err)
		sum.Add(sum, pos.Contribution.Contributed)
	}
	assert.Equal(t, units(4000).String(), sum.String())
}

func TestFailedRefundCommitRestoresCustody(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())
	h.fund(t, "token", units(2000), "addr1", "addr2")

	h.clock.Set(c.StartTime)
	for _, a := range []string{"addr1", "addr2"} {
		_, err := h.svc.Join(ctx, c.ID, a, units(500))
		require.NoError(t, err)
	}
	h.clock.Set(c.EndTime)
	_, err := h.svc.Approve(ctx, c.ID, "owner")
	require.NoError(t, err)

	h.repo.failNext(1)
	_, err = h.svc.Refund(ctx, c.ID, "addr1")
	require.ErrorIs(t, err, errCommit)
	assert.Equal(t, units(1000).String(), h.balance(t, "token", "ido"))
	assert.Equal(t, units(1500).String(), h.balance(t, "token", "addr1"))

	pos, err := h.svc.GetPosition(ctx, c.ID, "addr1")
	require.NoError(t, err)
	assert.Equal(t, 0, pos.Contribution.Settled.Sign())

	got, err := h.svc.Refund(ctx, c.ID, "addr1")
	require.NoError(t, err)
	assert.Equal(t, units(500).String(), got.String())
	assert.Equal(t, units(500).String(), h.balance(t, "token", "ido"))
	assert.Equal(t, units(2000).String(), h.balance(t, "token", "addr1"))
}

func TestFailedApproveAndClaimCommitsRestoreCustody(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.create(t, testConfig())
	h.fund(t, "token", units(1000), "a", "b")
	require.NoError(t, h.ledger.Mint(ctx, "reward", "ido", units(2000)))

	h.clock.Set(c.StartTime)
	for _, a := range []string{"a", "b"} {
		_, err := h.svc.Join(ctx, c.ID, a, units(1000))
		require.NoError(t, err)
	}

	h.clock.Set(c.EndTime)
	h.repo.failNext(1)
	_, err := h.svc.Approve(ctx, c.ID, "owner")
	require.ErrorIs(t, err, errCommit)
	assert.Equal(t, "0", h.balance(t, "token", "owner"))
	assert.Equal(t, units(2000).String(), h.balance(t, "token", "ido"))

	outcome, err := h.svc.Approve(ctx, c.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClaiming, outcome)
	assert.Equal(t, units(2000).String(), h.balance(t, "token", "owner"))

	h.clock.Set(c.EndTime.Add(24 * time.Hour))
	h.repo.failNext(1)
	_, err = h.svc.Claim(ctx, c.ID, "a")
	require.ErrorIs(t, err, errCommit)
	assert.Equal(t, "0", h.balance(t, "reward", "a"))
	assert.Equal(t, units(2000).String(), h.balance(t, "reward", "ido"))

	got, err := h.svc.Claim(ctx, c.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, units(250).String(), got.String())
	assert.Equal(t, units(250).String(), h.balance(t, "reward", "a"))
	assert.Equal(t, units(1750).String(), h.balance(t, "reward", "ido"))
}
