package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/model"
)

// ShipRepository manages the player_ships table. Only hull and shield are
// stored; status effects never outlive a session.
type ShipRepository struct {
	db *pgxpool.Pool
}

// NewShipRepository creates a new ShipRepository.
func NewShipRepository(db *pgxpool.Pool) *ShipRepository {
	return &ShipRepository{db: db}
}

// Load returns the player's ship. Found is false when nothing is stored yet.
func (r *ShipRepository) Load(ctx context.Context, playerID string) (ship model.Combatant, found bool, err error) {
	query := `SELECT health, max_health, shield, max_shield FROM player_ships WHERE player_id = $1`

	err = r.db.QueryRow(ctx, query, playerID).Scan(&ship.Health, &ship.MaxHealth, &ship.Shield, &ship.MaxShield)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Combatant{}, false, nil
	}
	if err != nil {
		return model.Combatant{}, false, fmt.Errorf("loading ship for player %q: %w", playerID, err)
	}
	return ship, true, nil
}

// Save upserts the ship's hull and shield.
func (r *ShipRepository) Save(ctx context.Context, playerID string, ship *model.Combatant) error {
	query := `
		INSERT INTO player_ships (player_id, health, max_health, shield, max_shield, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (player_id)
		DO UPDATE SET health = EXCLUDED.health,
		              max_health = EXCLUDED.max_health,
		              shield = EXCLUDED.shield,
		              max_shield = EXCLUDED.max_shield,
		              updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query, playerID,
		max(ship.Health, 0), max(ship.MaxHealth, 0), max(ship.Shield, 0), max(ship.MaxShield, 0))
	if err != nil {
		return fmt.Errorf("saving ship for player %q: %w", playerID, err)
	}
	return nil
}
