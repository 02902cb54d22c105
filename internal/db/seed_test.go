package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port/mocks"
)

func TestSeedCreatesValidCampaigns(t *testing.T) {
	svc := mocks.NewMockIDOUseCase(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var rewards []string
	svc.EXPECT().CreateCampaign(mock.Anything, "demo", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, owner string, cfg domain.CampaignConfig, s domain.VestingSchedule) (*domain.Campaign, error) {
			rewards = append(rewards, cfg.RewardAsset)
			return domain.NewCampaign(owner, cfg, s, now)
		}).Times(3)

	require.NoError(t, Seed(context.Background(), svc, "demo", now))
	assert.Equal(t, []string{"reward", "reward-b", "reward-c"}, rewards)
}

func TestSeedStopsOnError(t *testing.T) {
	svc := mocks.NewMockIDOUseCase(t)
	svc.EXPECT().CreateCampaign(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("store down")).Once()

	err := Seed(context.Background(), svc, "demo", time.Now())
	assert.ErrorContains(t, err, "seed round 1")
}
