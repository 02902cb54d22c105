package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hermes-ido/internal/amount"
	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Amounts are NUMERIC(78,0) columns exchanged as text so that
// values above 64 bits survive the round trip.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
            c.id,
            c.owner,
            c.treasury,
            c.min_allocation::text,
            c.max_allocation::text,
            c.min_goal::text,
            c.max_goal::text,
            c.total::text,
            c.price::text,
            c.start_time,
            c.end_time,
            c.acquire_asset,
            c.reward_asset,
            c.acquire_decimals,
            c.reward_decimals,
            c.status,
            c.resolved_at,
            c.created_at`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Create inserts the campaign and its vesting schedule in one transaction.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO campaigns (
            owner, treasury, min_allocation, max_allocation, min_goal, max_goal,
            total, price, start_time, end_time, acquire_asset, reward_asset,
            acquire_decimals, reward_decimals, status, created_at)
        VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6::numeric,
            $7::numeric, $8::numeric, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id`,
		c.Owner, c.Treasury,
		c.MinAllocation.String(), c.MaxAllocation.String(),
		c.MinGoal.String(), c.MaxGoal.String(),
		c.Total.String(), c.Price.String(),
		c.StartTime.UTC(), c.EndTime.UTC(),
		c.AcquireAsset, c.RewardAsset,
		int16(c.AcquireDecimals), int16(c.RewardDecimals),
		string(c.Status), c.CreatedAt.UTC(),
	).Scan(&c.ID)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, cp := range c.Vesting {
		batch.Queue(`INSERT INTO vesting_checkpoints (campaign_id, position, fraction, after_seconds) VALUES ($1, $2, $3::numeric, $4)`,
			c.ID, int16(i), cp.Fraction.String(), int64(cp.After/time.Second))
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return getCampaign(ctx, r.pool, id, false)
}

// List returns campaigns ordered by id, optionally filtered by status.
func (r *CampaignRepository) List(ctx context.Context, status *domain.Status) ([]*domain.Campaign, error) {
	query := `SELECT` + campaignColumns + ` FROM campaigns c`
	var args []any
	if status != nil {
		query += ` WHERE c.status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY c.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, err
	}
	for _, c := range campaigns {
		if c.Vesting, err = getSchedule(ctx, r.pool, c.ID); err != nil {
			return nil, err
		}
	}
	return campaigns, nil
}

// GetContribution returns the ledger entry or an empty one.
func (r *CampaignRepository) GetContribution(ctx context.Context, campaignID int64, account string) (*domain.Contribution, error) {
	return getContribution(ctx, r.pool, campaignID, account, false)
}

// Update locks the campaign row, and the contribution row when one exists,
// runs fn and writes both back before commit.
func (r *CampaignRepository) Update(ctx context.Context, campaignID int64, account string, fn port.UpdateFn) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := getCampaign(ctx, tx, campaignID, true)
	if err != nil {
		return err
	}
	var contrib *domain.Contribution
	if account != "" {
		if contrib, err = getContribution(ctx, tx, campaignID, account, true); err != nil {
			return err
		}
	}

	if err = fn(ctx, c, contrib); err != nil {
		return err
	}

	var resolvedAt *time.Time
	if !c.ResolvedAt.IsZero() {
		t := c.ResolvedAt.UTC()
		resolvedAt = &t
	}
	if _, err = tx.Exec(ctx, `UPDATE campaigns SET total = $1::numeric, status = $2, resolved_at = $3 WHERE id = $4`,
		c.Total.String(), string(c.Status), resolvedAt, c.ID); err != nil {
		return err
	}
	if contrib == nil || contrib.UpdatedAt.IsZero() {
		return nil
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO contributions (campaign_id, account, contributed, settled, created_at, updated_at)
        VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6)
        ON CONFLICT (campaign_id, account) DO UPDATE
        SET contributed = EXCLUDED.contributed, settled = EXCLUDED.settled, updated_at = EXCLUDED.updated_at`,
		campaignID, account, contrib.Contributed.String(), contrib.Settled.String(),
		contrib.CreatedAt.UTC(), contrib.UpdatedAt.UTC())
	return err
}

func getCampaign(ctx context.Context, q querier, id int64, lock bool) (*domain.Campaign, error) {
	query := `SELECT` + campaignColumns + ` FROM campaigns c WHERE c.id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	c, err := scanCampaign(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.Vesting, err = getSchedule(ctx, q, id); err != nil {
		return nil, err
	}
	return c, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                                                  domain.Campaign
		minAlloc, maxAlloc, minGoal, maxGoal, total, price string
		acqDec, rewDec                                     int16
		status                                             string
		resolvedAt                                         *time.Time
	)
	err := row.Scan(
		&c.ID,
		&c.Owner,
		&c.Treasury,
		&minAlloc,
		&maxAlloc,
		&minGoal,
		&maxGoal,
		&total,
		&price,
		&c.StartTime,
		&c.EndTime,
		&c.AcquireAsset,
		&c.RewardAsset,
		&acqDec,
		&rewDec,
		&status,
		&resolvedAt,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	var p amount.Parser
	c.MinAllocation = p.Int(minAlloc)
	c.MaxAllocation = p.Int(maxAlloc)
	c.MinGoal = p.Int(minGoal)
	c.MaxGoal = p.Int(maxGoal)
	c.Total = p.Int(total)
	c.Price = p.Int(price)
	if p.Err() != nil {
		return nil, fmt.Errorf("decode campaign %d: %w", c.ID, p.Err())
	}
	c.AcquireDecimals = uint8(acqDec)
	c.RewardDecimals = uint8(rewDec)
	c.Status = domain.Status(status)
	if resolvedAt != nil {
		c.ResolvedAt = resolvedAt.UTC()
	}
	return &c, nil
}

func getSchedule(ctx context.Context, q querier, campaignID int64) (domain.VestingSchedule, error) {
	rows, err := q.Query(ctx, `SELECT fraction::text, after_seconds FROM vesting_checkpoints WHERE campaign_id = $1 ORDER BY position`, campaignID)
	if err != nil {
		return nil, err
	}
	var p amount.Parser
	schedule, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Checkpoint, error) {
		var (
			fraction string
			after    int64
		)
		if err := row.Scan(&fraction, &after); err != nil {
			return domain.Checkpoint{}, err
		}
		return domain.Checkpoint{Fraction: p.Int(fraction), After: time.Duration(after) * time.Second}, nil
	})
	if err != nil {
		return nil, err
	}
	if p.Err() != nil {
		return nil, fmt.Errorf("decode schedule of campaign %d: %w", campaignID, p.Err())
	}
	return schedule, nil
}

func getContribution(ctx context.Context, q querier, campaignID int64, account string, lock bool) (*domain.Contribution, error) {
	query := `SELECT contributed::text, settled::text, created_at, updated_at FROM contributions WHERE campaign_id = $1 AND account = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	var (
		contributed, settled string
		contrib              = domain.NewContribution(campaignID, account)
	)
	err := q.QueryRow(ctx, query, campaignID, account).Scan(&contributed, &settled, &contrib.CreatedAt, &contrib.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return contrib, nil
	}
	if err != nil {
		return nil, err
	}
	var p amount.Parser
	contrib.Contributed = p.Int(contributed)
	contrib.Settled = p.Int(settled)
	if p.Err() != nil {
		return nil, fmt.Errorf("decode contribution %d/%s: %w", campaignID, account, p.Err())
	}
	return contrib, nil
}
