package httpadapter

import (
	"fmt"
	"math/big"
	"time"

	"hermes-ido/internal/amount"
	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

// Amounts are decimal strings in whole tokens of the asset they refer to;
// price and vesting fractions are plain ratios such as "0.5".

type checkpointDTO struct {
	Fraction     string `json:"fraction"`
	AfterSeconds int64  `json:"after_seconds"`
}

type createCampaignRequest struct {
	MinAllocation   string          `json:"min_allocation"`
	MaxAllocation   string          `json:"max_allocation"`
	MinGoal         string          `json:"min_goal"`
	MaxGoal         string          `json:"max_goal"`
	Price           string          `json:"price"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	AcquireAsset    string          `json:"acquire_asset"`
	RewardAsset     string          `json:"reward_asset"`
	AcquireDecimals uint8           `json:"acquire_decimals"`
	RewardDecimals  uint8           `json:"reward_decimals"`
	Treasury        string          `json:"treasury,omitempty"`
	Vesting         []checkpointDTO `json:"vesting"`
}

func (req createCampaignRequest) toDomain() (domain.CampaignConfig, domain.VestingSchedule, error) {
	if req.AcquireDecimals > domain.MaxDecimals || req.RewardDecimals > domain.MaxDecimals {
		return domain.CampaignConfig{}, nil, domain.NewError(domain.CodeInvalidConfig,
			fmt.Sprintf("decimals must not exceed %d", domain.MaxDecimals))
	}
	cfg := domain.CampaignConfig{
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AcquireAsset:    req.AcquireAsset,
		RewardAsset:     req.RewardAsset,
		AcquireDecimals: req.AcquireDecimals,
		RewardDecimals:  req.RewardDecimals,
		Treasury:        req.Treasury,
	}
	fields := []struct {
		name string
		raw  string
		dst  **big.Int
	}{
		{"min_allocation", req.MinAllocation, &cfg.MinAllocation},
		{"max_allocation", req.MaxAllocation, &cfg.MaxAllocation},
		{"min_goal", req.MinGoal, &cfg.MinGoal},
		{"max_goal", req.MaxGoal, &cfg.MaxGoal},
	}
	for _, f := range fields {
		v, err := amount.ParseUnits(f.raw, req.AcquireDecimals)
		if err != nil {
			return cfg, nil, domain.Wrap(domain.CodeInvalidConfig, "invalid "+f.name, err)
		}
		*f.dst = v
	}
	price, err := amount.ParseFraction(req.Price)
	if err != nil {
		return cfg, nil, domain.Wrap(domain.CodeInvalidConfig, "invalid price", err)
	}
	cfg.Price = price

	schedule := make(domain.VestingSchedule, 0, len(req.Vesting))
	for i, cp := range req.Vesting {
		fraction, err := amount.ParseFraction(cp.Fraction)
		if err != nil {
			return cfg, nil, domain.Wrap(domain.CodeInvalidConfig, fmt.Sprintf("invalid vesting[%d] fraction", i), err)
		}
		schedule = append(schedule, domain.Checkpoint{
			Fraction: fraction,
			After:    time.Duration(cp.AfterSeconds) * time.Second,
		})
	}
	return cfg, schedule, nil
}

type campaignResponse struct {
	ID              int64           `json:"id"`
	Owner           string          `json:"owner"`
	Treasury        string          `json:"treasury"`
	Status          domain.Status   `json:"status"`
	MinAllocation   string          `json:"min_allocation"`
	MaxAllocation   string          `json:"max_allocation"`
	MinGoal         string          `json:"min_goal"`
	MaxGoal         string          `json:"max_goal"`
	Total           string          `json:"total"`
	Price           string          `json:"price"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	AcquireAsset    string          `json:"acquire_asset"`
	RewardAsset     string          `json:"reward_asset"`
	AcquireDecimals uint8           `json:"acquire_decimals"`
	RewardDecimals  uint8           `json:"reward_decimals"`
	Vesting         []checkpointDTO `json:"vesting"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	dec := c.AcquireDecimals
	resp := campaignResponse{
		ID:              c.ID,
		Owner:           c.Owner,
		Treasury:        c.Treasury,
		Status:          c.Status,
		MinAllocation:   amount.FormatUnits(c.MinAllocation, dec),
		MaxAllocation:   amount.FormatUnits(c.MaxAllocation, dec),
		MinGoal:         amount.FormatUnits(c.MinGoal, dec),
		MaxGoal:         amount.FormatUnits(c.MaxGoal, dec),
		Total:           amount.FormatUnits(c.Total, dec),
		Price:           amount.FormatFraction(c.Price),
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		AcquireAsset:    c.AcquireAsset,
		RewardAsset:     c.RewardAsset,
		AcquireDecimals: c.AcquireDecimals,
		RewardDecimals:  c.RewardDecimals,
		CreatedAt:       c.CreatedAt,
	}
	if _, at, ok := c.Resolution(); ok {
		resp.ResolvedAt = &at
	}
	for _, cp := range c.Vesting {
		resp.Vesting = append(resp.Vesting, checkpointDTO{
			Fraction:     amount.FormatFraction(cp.Fraction),
			AfterSeconds: int64(cp.After / time.Second),
		})
	}
	return resp
}

type amountRequest struct {
	Amount string `json:"amount"`
}

// transferResponse reports what a join, claim or refund actually moved.
type transferResponse struct {
	CampaignID int64  `json:"campaign_id"`
	Account    string `json:"account"`
	Asset      string `json:"asset"`
	Amount     string `json:"amount"`
}

type approveResponse struct {
	CampaignID int64         `json:"campaign_id"`
	Outcome    domain.Status `json:"outcome"`
}

type positionResponse struct {
	CampaignID  int64  `json:"campaign_id"`
	Account     string `json:"account"`
	Contributed string `json:"contributed"`
	Settled     string `json:"settled"`
	Entitlement string `json:"entitlement"`
	Claimable   string `json:"claimable"`
	Refundable  string `json:"refundable"`
}

func newPositionResponse(c *domain.Campaign, pos *port.Position) positionResponse {
	settledDec := c.AcquireDecimals
	if c.Status == domain.StatusClaiming {
		settledDec = c.RewardDecimals
	}
	return positionResponse{
		CampaignID:  c.ID,
		Account:     pos.Contribution.Account,
		Contributed: amount.FormatUnits(pos.Contribution.Contributed, c.AcquireDecimals),
		Settled:     amount.FormatUnits(pos.Contribution.Settled, settledDec),
		Entitlement: amount.FormatUnits(pos.Entitlement, c.RewardDecimals),
		Claimable:   amount.FormatUnits(pos.Claimable, c.RewardDecimals),
		Refundable:  amount.FormatUnits(pos.Refundable, c.AcquireDecimals),
	}
}

type ledgerRequest struct {
	Account  string `json:"account"`
	Amount   string `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

type balanceResponse struct {
	Asset     string `json:"asset"`
	Account   string `json:"account"`
	Balance   string `json:"balance"`
	Allowance string `json:"allowance"`
}
