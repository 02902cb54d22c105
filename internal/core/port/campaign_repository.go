package port

import (
	"context"

	"hermes-ido/internal/core/domain"
)

// UpdateFn mutates a locked campaign and one contributor's ledger entry.
// Returning an error discards every change made inside the call.
type UpdateFn func(ctx context.Context, c *domain.Campaign, contrib *domain.Contribution) error

// CampaignRepository is the registry of campaigns and their contribution
// ledgers. It is an outbound port; implementations must make Update atomic
// and exclusive per campaign.
type CampaignRepository interface {
	// Create assigns the next sequential id to c and stores it.
	Create(ctx context.Context, c *domain.Campaign) error
	// Get returns the campaign or domain.ErrCampaignNotFound.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// List returns campaigns ordered by id. A nil status returns all.
	List(ctx context.Context, status *domain.Status) ([]*domain.Campaign, error)
	// GetContribution returns the ledger entry, or an empty one when the
	// account never joined.
	GetContribution(ctx context.Context, campaignID int64, account string) (*domain.Contribution, error)
	// Update loads the campaign and the account's contribution under an
	// exclusive lock, runs fn and persists both if fn succeeds. An empty
	// account passes a nil contribution to fn.
	Update(ctx context.Context, campaignID int64, account string, fn UpdateFn) error
}
