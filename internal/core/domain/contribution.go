package domain

import (
	"math/big"
	"time"
)

// Contribution is one contributor's cumulative deposit into one campaign.
// Settled counts reward claimed on success or acquire asset refunded on
// failure; which one depends on the campaign outcome.
type Contribution struct {
	CampaignID  int64
	Account     string
	Contributed *big.Int
	Settled     *big.Int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewContribution returns an empty ledger entry.
func NewContribution(campaignID int64, account string) *Contribution {
	return &Contribution{
		CampaignID:  campaignID,
		Account:     account,
		Contributed: new(big.Int),
		Settled:     new(big.Int),
	}
}

func (c *Contribution) touch(now time.Time) {
	now = now.UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
