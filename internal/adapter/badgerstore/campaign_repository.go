package badgerstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

const (
	seqKey             = "seq/campaign"
	campaignPrefix     = "campaign/"
	contributionPrefix = "contribution/"

	// createRetries bounds retries of Create on id sequence conflicts.
	createRetries = 5
)

// CampaignRepository implements port.CampaignRepository on an embedded
// Badger database. Badger transactions are serializable, so Update either
// commits the campaign and the contribution together or neither.
type CampaignRepository struct {
	db *badger.DB
}

// NewCampaignRepository returns a repository over db.
func NewCampaignRepository(db *badger.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func campaignKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", campaignPrefix, id))
}

func contributionKey(campaignID int64, account string) []byte {
	return []byte(fmt.Sprintf("%s%020d/%s", contributionPrefix, campaignID, account))
}

// Create assigns the next id from the sequence key and stores c. Concurrent
// creates conflict on the sequence key and are retried.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	var err error
	for attempt := 0; attempt < createRetries; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = r.db.Update(func(txn *badger.Txn) error {
			id, err := nextID(txn)
			if err != nil {
				return err
			}
			c.ID = id
			return putJSON(txn, campaignKey(id), toCampaignRecord(c))
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func nextID(txn *badger.Txn) (int64, error) {
	var next uint64
	item, err := txn.Get([]byte(seqKey))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, err
	default:
		if err = item.Value(func(val []byte) error {
			next = binary.BigEndian.Uint64(val)
			return nil
		}); err != nil {
			return 0, err
		}
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next+1)
	if err = txn.Set([]byte(seqKey), buf); err != nil {
		return 0, err
	}
	return int64(next), nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = getCampaign(txn, id)
		return err
	})
	return c, err
}

// List returns campaigns ordered by id, optionally filtered by status.
func (r *CampaignRepository) List(_ context.Context, status *domain.Status) ([]*domain.Campaign, error) {
	var out []*domain.Campaign
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(campaignPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec campaignRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			if status != nil && rec.Status != *status {
				continue
			}
			c, err := rec.toDomain()
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	return out, err
}

// GetContribution returns the ledger entry or an empty one.
func (r *CampaignRepository) GetContribution(_ context.Context, campaignID int64, account string) (*domain.Contribution, error) {
	var contrib *domain.Contribution
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		contrib, err = getContribution(txn, campaignID, account)
		return err
	})
	return contrib, err
}

// Update runs fn inside a read-write transaction. Nothing is written when
// fn fails. A commit conflict is returned to the caller, not retried,
// because fn may have moved tokens.
func (r *CampaignRepository) Update(ctx context.Context, campaignID int64, account string, fn port.UpdateFn) error {
	return r.db.Update(func(txn *badger.Txn) error {
		c, err := getCampaign(txn, campaignID)
		if err != nil {
			return err
		}
		var contrib *domain.Contribution
		if account != "" {
			if contrib, err = getContribution(txn, campaignID, account); err != nil {
				return err
			}
		}

		if err = fn(ctx, c, contrib); err != nil {
			return err
		}

		if err = putJSON(txn, campaignKey(c.ID), toCampaignRecord(c)); err != nil {
			return err
		}
		// Only contributions touched by fn are persisted; reads of absent
		// entries never create records.
		if contrib != nil && !contrib.UpdatedAt.IsZero() {
			return putJSON(txn, contributionKey(campaignID, account), toContributionRecord(contrib))
		}
		return nil
	})
}

func getCampaign(txn *badger.Txn, id int64) (*domain.Campaign, error) {
	var rec campaignRecord
	if err := getJSON(txn, campaignKey(id), &rec); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return rec.toDomain()
}

func getContribution(txn *badger.Txn, campaignID int64, account string) (*domain.Contribution, error) {
	var rec contributionRecord
	if err := getJSON(txn, contributionKey(campaignID, account), &rec); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.NewContribution(campaignID, account), nil
		}
		return nil, err
	}
	return rec.toDomain()
}

func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func putJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}
