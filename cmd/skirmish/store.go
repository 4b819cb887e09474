package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/db"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/ledger"
	"github.com/udisondev/skirmish/internal/model"
)

// store persists one player's resources, ship and sessions.
type store struct {
	playerID  string
	resources *db.ResourceRepository
	ships     *db.ShipRepository
	sessions  *db.SessionRepository
}

func newStore(database *db.DB, playerID string) *store {
	return &store{
		playerID:  playerID,
		resources: database.Resources(),
		ships:     database.Ships(),
		sessions:  database.Sessions(),
	}
}

// loadResources replaces the ledger with stored balances, or seeds the
// store with the ledger's starting balances for a new player.
func (st *store) loadResources(ctx context.Context, l *ledger.Memory) error {
	balances, found, err := st.resources.Load(ctx, st.playerID)
	if err != nil {
		return err
	}
	if !found {
		slog.Info("new player, seeding resources", "player", st.playerID)
		return st.resources.Save(ctx, st.playerID, l.Balances())
	}
	l.Replace(balances)
	return nil
}

// loadShip restores the stored hull and shield onto player. Stored values
// are clamped to player's configured maximums.
func (st *store) loadShip(ctx context.Context, player *model.Combatant) error {
	ship, found, err := st.ships.Load(ctx, st.playerID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	restoreShip(player, ship)
	return nil
}

func restoreShip(player *model.Combatant, stored model.Combatant) {
	player.Health = min(max(stored.Health, 0), player.MaxHealth)
	player.Shield = min(max(stored.Shield, 0), player.MaxShield)
}

// activeSession returns the player's unfinished session, if any.
func (st *store) activeSession(ctx context.Context) (combat.Snapshot, bool, error) {
	snap, err := st.sessions.LatestActive(ctx, st.playerID)
	if errors.Is(err, db.ErrSessionNotFound) {
		return combat.Snapshot{}, false, nil
	}
	if err != nil {
		return combat.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (st *store) save(ctx context.Context, l *ledger.Memory, s *combat.Session) error {
	if err := st.resources.Save(ctx, st.playerID, l.Balances()); err != nil {
		return fmt.Errorf("saving resources: %w", err)
	}
	if err := st.ships.Save(ctx, st.playerID, s.Player()); err != nil {
		return fmt.Errorf("saving ship: %w", err)
	}
	if err := st.sessions.Save(ctx, st.playerID, s.Snapshot()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
