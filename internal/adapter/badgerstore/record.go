package badgerstore

import (
	"fmt"
	"time"

	"hermes-ido/internal/amount"
	"hermes-ido/internal/core/domain"
)

// Amounts are stored as decimal strings; JSON numbers would lose precision
// in non-Go readers.
type campaignRecord struct {
	ID              int64              `json:"id"`
	Owner           string             `json:"owner"`
	Treasury        string             `json:"treasury"`
	MinAllocation   string             `json:"min_allocation"`
	MaxAllocation   string             `json:"max_allocation"`
	MinGoal         string             `json:"min_goal"`
	MaxGoal         string             `json:"max_goal"`
	Total           string             `json:"total"`
	Price           string             `json:"price"`
	StartTime       time.Time          `json:"start_time"`
	EndTime         time.Time          `json:"end_time"`
	AcquireAsset    string             `json:"acquire_asset"`
	RewardAsset     string             `json:"reward_asset"`
	AcquireDecimals uint8              `json:"acquire_decimals"`
	RewardDecimals  uint8              `json:"reward_decimals"`
	Status          domain.Status      `json:"status"`
	ResolvedAt      time.Time          `json:"resolved_at"`
	Vesting         []checkpointRecord `json:"vesting"`
	CreatedAt       time.Time          `json:"created_at"`
}

type checkpointRecord struct {
	Fraction     string `json:"fraction"`
	AfterSeconds int64  `json:"after_seconds"`
}

type contributionRecord struct {
	CampaignID  int64     `json:"campaign_id"`
	Account     string    `json:"account"`
	Contributed string    `json:"contributed"`
	Settled     string    `json:"settled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCampaignRecord(c *domain.Campaign) campaignRecord {
	rec := campaignRecord{
		ID:              c.ID,
		Owner:           c.Owner,
		Treasury:        c.Treasury,
		MinAllocation:   c.MinAllocation.String(),
		MaxAllocation:   c.MaxAllocation.String(),
		MinGoal:         c.MinGoal.String(),
		MaxGoal:         c.MaxGoal.String(),
		Total:           c.Total.String(),
		Price:           c.Price.String(),
		StartTime:       c.StartTime.UTC(),
		EndTime:         c.EndTime.UTC(),
		AcquireAsset:    c.AcquireAsset,
		RewardAsset:     c.RewardAsset,
		AcquireDecimals: c.AcquireDecimals,
		RewardDecimals:  c.RewardDecimals,
		Status:          c.Status,
		ResolvedAt:      c.ResolvedAt.UTC(),
		CreatedAt:       c.CreatedAt.UTC(),
	}
	for _, cp := range c.Vesting {
		rec.Vesting = append(rec.Vesting, checkpointRecord{
			Fraction:     cp.Fraction.String(),
			AfterSeconds: int64(cp.After / time.Second),
		})
	}
	return rec
}

func (r campaignRecord) toDomain() (*domain.Campaign, error) {
	var p amount.Parser
	c := &domain.Campaign{
		CampaignConfig: domain.CampaignConfig{
			MinAllocation:   p.Int(r.MinAllocation),
			MaxAllocation:   p.Int(r.MaxAllocation),
			MinGoal:         p.Int(r.MinGoal),
			MaxGoal:         p.Int(r.MaxGoal),
			Price:           p.Int(r.Price),
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			AcquireAsset:    r.AcquireAsset,
			RewardAsset:     r.RewardAsset,
			AcquireDecimals: r.AcquireDecimals,
			RewardDecimals:  r.RewardDecimals,
			Treasury:        r.Treasury,
		},
		ID:         r.ID,
		Owner:      r.Owner,
		Total:      p.Int(r.Total),
		Status:     r.Status,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
	for _, cp := range r.Vesting {
		c.Vesting = append(c.Vesting, domain.Checkpoint{
			Fraction: p.Int(cp.Fraction),
			After:    time.Duration(cp.AfterSeconds) * time.Second,
		})
	}
	if p.Err() != nil {
		return nil, fmt.Errorf("decode campaign %d: %w", r.ID, p.Err())
	}
	return c, nil
}

func toContributionRecord(c *domain.Contribution) contributionRecord {
	return contributionRecord{
		CampaignID:  c.CampaignID,
		Account:     c.Account,
		Contributed: c.Contributed.String(),
		Settled:     c.Settled.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r contributionRecord) toDomain() (*domain.Contribution, error) {
	var p amount.Parser
	c := &domain.Contribution{
		CampaignID:  r.CampaignID,
		Account:     r.Account,
		Contributed: p.Int(r.Contributed),
		Settled:     p.Int(r.Settled),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if p.Err() != nil {
		return nil, fmt.Errorf("decode contribution %d/%s: %w", r.CampaignID, r.Account, p.Err())
	}
	return c, nil
}
