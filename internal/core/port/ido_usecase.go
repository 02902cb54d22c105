package port

import (
	"context"
	"math/big"

	"hermes-ido/internal/core/domain"
)

// IDOUseCase defines the business operations exposed by the sale engine.
// This interface is the primary port into the application domain; the HTTP
// adapter and the resolver job drive it.
type IDOUseCase interface {
	// CreateCampaign validates the configuration and appends a new pending
	// campaign owned by owner.
	CreateCampaign(ctx context.Context, owner string, cfg domain.CampaignConfig, schedule domain.VestingSchedule) (*domain.Campaign, error)

	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ListCampaigns returns campaigns, optionally filtered by status.
	ListCampaigns(ctx context.Context, status *domain.Status) ([]*domain.Campaign, error)

	// Join deposits up to amount of the acquire asset from account and
	// returns the amount actually pulled.
	Join(ctx context.Context, campaignID int64, account string, amount *big.Int) (*big.Int, error)

	// Approve resolves an ended campaign and returns its outcome.
	Approve(ctx context.Context, campaignID int64, actor string) (domain.Status, error)

	// Claim pays the vested, unclaimed reward to account.
	Claim(ctx context.Context, campaignID int64, account string) (*big.Int, error)

	// Refund returns account's unrefunded contribution.
	Refund(ctx context.Context, campaignID int64, account string) (*big.Int, error)

	// GetPosition reports account's ledger entry and what it can withdraw now.
	GetPosition(ctx context.Context, campaignID int64, account string) (*Position, error)
}

// Position is a contributor's view of one campaign. Entitlement and
// Claimable are zero unless the campaign resolved to claiming; Refundable is
// zero unless it resolved to refunding.
type Position struct {
	Contribution *domain.Contribution
	Entitlement  *big.Int
	Claimable    *big.Int
	Refundable   *big.Int
}
