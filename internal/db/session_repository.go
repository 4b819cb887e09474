package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
)

// ErrSessionNotFound is returned when no stored session matches.
var ErrSessionNotFound = errors.New("combat session not found")

// SessionRow is the summary of a stored session, without the snapshot.
type SessionRow struct {
	ID        string
	EnemyID   string
	RegionID  string
	Active    bool
	Outcome   model.Outcome
	Turn      int
	UpdatedAt time.Time
}

// SessionRepository manages the combat_sessions table.
// Snapshots are stored as JSONB; the summary columns are denormalized for
// listing.
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save inserts or replaces the snapshot of a session.
func (r *SessionRepository) Save(ctx context.Context, playerID string, snap combat.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", snap.ID, err)
	}

	query := `
		INSERT INTO combat_sessions (id, player_id, enemy_id, region_id, active, outcome, turn, snapshot, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id)
		DO UPDATE SET active = EXCLUDED.active,
		              outcome = EXCLUDED.outcome,
		              turn = EXCLUDED.turn,
		              snapshot = EXCLUDED.snapshot,
		              updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.Exec(ctx, query,
		snap.ID, playerID, snap.EnemyID, snap.RegionID, snap.Active, string(snap.Outcome), snap.Turn, raw)
	if err != nil {
		return fmt.Errorf("saving session %s: %w", snap.ID, err)
	}
	return nil
}

// Load returns the stored snapshot of session id.
func (r *SessionRepository) Load(ctx context.Context, id string) (combat.Snapshot, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT snapshot FROM combat_sessions WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return combat.Snapshot{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return combat.Snapshot{}, fmt.Errorf("loading session %s: %w", id, err)
	}
	return decodeSnapshot(id, raw)
}

// LatestActive returns the most recently updated unfinished session of the
// player, or ErrSessionNotFound.
func (r *SessionRepository) LatestActive(ctx context.Context, playerID string) (combat.Snapshot, error) {
	query := `
		SELECT id, snapshot
		FROM combat_sessions
		WHERE player_id = $1 AND active
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var (
		id  string
		raw []byte
	)
	err := r.db.QueryRow(ctx, query, playerID).Scan(&id, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return combat.Snapshot{}, fmt.Errorf("active session for player %q: %w", playerID, ErrSessionNotFound)
	}
	if err != nil {
		return combat.Snapshot{}, fmt.Errorf("loading active session for player %q: %w", playerID, err)
	}
	return decodeSnapshot(id, raw)
}

// ListByPlayer returns up to limit session summaries, newest first.
func (r *SessionRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]SessionRow, error) {
	query := `
		SELECT id, enemy_id, region_id, active, outcome, turn, updated_at
		FROM combat_sessions
		WHERE player_id = $1
		ORDER BY updated_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions for player %q: %w", playerID, err)
	}
	defer rows.Close()

	var sessions []SessionRow
	for rows.Next() {
		var (
			s       SessionRow
			outcome string
		)
		if err := rows.Scan(&s.ID, &s.EnemyID, &s.RegionID, &s.Active, &outcome, &s.Turn, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		s.Outcome = model.Outcome(outcome)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}
	return sessions, nil
}

func decodeSnapshot(id string, raw []byte) (combat.Snapshot, error) {
	var snap combat.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return combat.Snapshot{}, fmt.Errorf("decoding snapshot %s: %w", id, err)
	}
	return snap, nil
}
