package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/model"
)

// ResourceRepository manages the resources table.
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository.
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Load returns the player's balances. Found is false when the player has
// no rows yet, so the caller can seed starting values.
func (r *ResourceRepository) Load(ctx context.Context, playerID string) (balances map[model.ResourceKind]int64, found bool, err error) {
	query := `SELECT kind, amount FROM resources WHERE player_id = $1`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, false, fmt.Errorf("querying resources for player %q: %w", playerID, err)
	}
	defer rows.Close()

	balances = make(map[model.ResourceKind]int64, len(model.ResourceKinds))
	for rows.Next() {
		var (
			kind   string
			amount int64
		)
		if err := rows.Scan(&kind, &amount); err != nil {
			return nil, false, fmt.Errorf("scanning resource row: %w", err)
		}
		k, err := model.ParseResourceKind(kind)
		if err != nil {
			return nil, false, fmt.Errorf("player %q: %w", playerID, err)
		}
		balances[k] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating resource rows: %w", err)
	}

	return balances, len(balances) > 0, nil
}

// Save upserts every pool in a single transaction. Pools missing from
// balances are stored as zero.
func (r *ResourceRepository) Save(ctx context.Context, playerID string, balances map[model.ResourceKind]int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for player %q: %w", playerID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("rollback failed", "player", playerID, "error", err)
		}
	}()

	query := `
		INSERT INTO resources (player_id, kind, amount, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (player_id, kind)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at
	`

	batch := &pgx.Batch{}
	for _, kind := range model.ResourceKinds {
		batch.Queue(query, playerID, string(kind), max(balances[kind], 0))
	}
	br := tx.SendBatch(ctx, batch)
	for _, kind := range model.ResourceKinds {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("saving %s for player %q: %w", kind, playerID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("closing resource batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit resources for player %q: %w", playerID, err)
	}
	return nil
}
