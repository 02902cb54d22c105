package domain

import "time"

// EventType names a state change observable by indexers.
type EventType string

const (
	EventCampaignCreated  EventType = "campaign.created"
	EventCampaignJoined   EventType = "campaign.joined"
	EventCampaignApproved EventType = "campaign.approved"
	EventCampaignClaimed  EventType = "campaign.claimed"
	EventCampaignRefunded EventType = "campaign.refunded"
)

// Event is a record of a committed mutation. Amount is a base-unit integer
// rendered as a decimal string so JSON consumers keep full precision.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	CampaignID int64     `json:"campaign_id"`
	Actor      string    `json:"actor"`
	Asset      string    `json:"asset,omitempty"`
	Amount     string    `json:"amount"`
	Outcome    Status    `json:"outcome,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
