package badgerstore

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes-ido/internal/core/domain"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) *CampaignRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCampaignRepository(db)
}

func newCampaign(t *testing.T) *domain.Campaign {
	t.Helper()
	scale := domain.Scale
	c, err := domain.NewCampaign("owner", domain.CampaignConfig{
		MinAllocation:   big.NewInt(1),
		MaxAllocation:   big.NewInt(100),
		MinGoal:         big.NewInt(50),
		MaxGoal:         new(big.Int).Lsh(big.NewInt(1), 100),
		Price:           new(big.Int).Set(scale),
		StartTime:       t0,
		EndTime:         t0.Add(time.Hour),
		AcquireAsset:    "token",
		RewardAsset:     "reward",
		AcquireDecimals: 6,
		RewardDecimals:  18,
	}, domain.VestingSchedule{
		{Fraction: new(big.Int).Div(scale, big.NewInt(2)), After: 0},
		{Fraction: new(big.Int).Set(scale), After: 90 * time.Minute},
	}, t0)
	require.NoError(t, err)
	return c
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for want := int64(0); want < 3; want++ {
		c := newCampaign(t)
		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, want, c.ID)
	}

	want := newCampaign(t)
	want.ID = 1
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want.MaxGoal.String(), got.MaxGoal.String())
	assert.Equal(t, want.Treasury, got.Treasury)
	assert.True(t, want.StartTime.Equal(got.StartTime))
	require.Len(t, got.Vesting, 2)
	assert.Equal(t, 90*time.Minute, got.Vesting[1].After)
	assert.Equal(t, domain.Scale.String(), got.Vesting[1].Fraction.String())

	_, err = repo.Get(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newCampaign(t)))
	}
	require.NoError(t, repo.Update(ctx, 1, "", func(_ context.Context, c *domain.Campaign, _ *domain.Contribution) error {
		c.RecordApprove(domain.StatusRefunding, t0.Add(time.Hour))
		return nil
	}))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{0, 1, 2}, []int64{all[0].ID, all[1].ID, all[2].ID})

	status := domain.StatusRefunding
	refunding, err := repo.List(ctx, &status)
	require.NoError(t, err)
	require.Len(t, refunding, 1)
	assert.Equal(t, int64(1), refunding[0].ID)
	assert.True(t, refunding[0].ResolvedAt.Equal(t0.Add(time.Hour)))
}

func TestUpdatePersistsCampaignAndContribution(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	c := newCampaign(t)
	require.NoError(t, repo.Create(ctx, c))

	err := repo.Update(ctx, c.ID, "alice", func(_ context.Context, c *domain.Campaign, contrib *domain.Contribution) error {
		amount, err := c.CheckJoin(contrib, big.NewInt(40), t0)
		if err != nil {
			return err
		}
		c.RecordJoin(contrib, amount, t0)
		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "40", got.Total.String())

	contrib, err := repo.GetContribution(ctx, c.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "40", contrib.Contributed.String())
	assert.True(t, contrib.CreatedAt.Equal(t0))
}

func TestUpdateDiscardsOnError(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	c := newCampaign(t)
	require.NoError(t, repo.Create(ctx, c))

	boom := errors.New("transfer failed")
	err := repo.Update(ctx, c.ID, "alice", func(_ context.Context, c *domain.Campaign, contrib *domain.Contribution) error {
		c.RecordJoin(contrib, big.NewInt(10), t0)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total.Sign())
	contrib, err := repo.GetContribution(ctx, c.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, contrib.Contributed.Sign())
	assert.True(t, contrib.CreatedAt.IsZero())
}

func TestUpdateUnknownCampaign(t *testing.T) {
	repo := newRepo(t)
	err := repo.Update(context.Background(), 3, "a", func(context.Context, *domain.Campaign, *domain.Contribution) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestRecordRejectsCorruptAmounts(t *testing.T) {
	rec := toCampaignRecord(newCampaign(t))
	rec.Total = "12x"
	_, err := rec.toDomain()
	assert.Error(t, err)
}
