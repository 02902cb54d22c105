package db

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"hermes-ido/internal/amount"
	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

// Seed creates demo campaigns through svc: two rounds at par with equal
// decimals and one at half price paying an asset with one decimal less.
// Each opens an hour after now and stays open for twelve hours.
func Seed(ctx context.Context, svc port.IDOUseCase, owner string, now time.Time) error {
	rounds := []struct {
		reward         string
		price          string
		rewardDecimals uint8
	}{
		{"reward", "1", 18},
		{"reward-b", "1", 18},
		{"reward-c", "0.5", 17},
	}
	for i, r := range rounds {
		cfg := domain.CampaignConfig{
			MinAllocation:   mustUnits("100", 18),
			MaxAllocation:   mustUnits("1000", 18),
			MinGoal:         mustUnits("2000", 18),
			MaxGoal:         mustUnits("4000", 18),
			Price:           mustUnits(r.price, 18),
			StartTime:       now.Add(time.Hour),
			EndTime:         now.Add(13 * time.Hour),
			AcquireAsset:    "token",
			RewardAsset:     r.reward,
			AcquireDecimals: 18,
			RewardDecimals:  r.rewardDecimals,
		}
		schedule := domain.VestingSchedule{
			{Fraction: mustUnits("0.25", 18), After: 24 * time.Hour},
			{Fraction: mustUnits("0.5", 18), After: 48 * time.Hour},
			{Fraction: mustUnits("1", 18), After: 72 * time.Hour},
		}
		if _, err := svc.CreateCampaign(ctx, owner, cfg, schedule); err != nil {
			return fmt.Errorf("seed round %d: %w", i+1, err)
		}
	}
	return nil
}

func mustUnits(s string, decimals uint8) *big.Int {
	v, err := amount.ParseUnits(s, decimals)
	if err != nil {
		panic(err)
	}
	return v
}
