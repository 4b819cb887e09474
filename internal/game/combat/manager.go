package combat

import (
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/skirmish/internal/ai"
	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/model"
)

// LogSink receives every battle-log entry as it is appended.
type LogSink func(entry model.LogEntry)

// OutcomeHook is called once when a session ends.
type OutcomeHook func(s *Session, outcome model.Outcome)

// Manager starts combat sessions for one player.
//
// The manager owns the player's ship stats, which carry over from one
// session to the next. At most one session is active at a time. A Manager
// and its sessions are meant to be driven from a single goroutine; a
// session rejects overlapping calls with ErrBusy.
type Manager struct {
	content Content
	ledger  Ledger
	decider *ai.Decider
	src     roll.Source
	combat  config.Combat
	rates   config.Rates
	now     func() time.Time

	logSink LogSink
	onEnd   OutcomeHook

	player  *model.Combatant
	current *Session
}

// Option configures a Manager.
type Option func(*Manager)

// WithSource sets the random source for enemy decisions and loot.
func WithSource(src roll.Source) Option {
	return func(m *Manager) { m.src = src }
}

// WithClock sets the timestamp source for log entries.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithCombatConfig overrides resolution settings.
func WithCombatConfig(c config.Combat) Option {
	return func(m *Manager) { m.combat = c }
}

// WithRates overrides loot multipliers.
func WithRates(r config.Rates) Option {
	return func(m *Manager) { m.rates = r }
}

// WithLogSink mirrors battle-log entries to fn.
func WithLogSink(fn LogSink) Option {
	return func(m *Manager) { m.logSink = fn }
}

// WithOutcomeHook registers fn to be called when a session ends.
func WithOutcomeHook(fn OutcomeHook) Option {
	return func(m *Manager) { m.onEnd = fn }
}

// NewManager creates a Manager for the given player ship.
func NewManager(content Content, ledger Ledger, player *model.Combatant, opts ...Option) *Manager {
	m := &Manager{
		content: content,
		ledger:  ledger,
		src:     roll.Global(),
		combat:  config.DefaultCombat(),
		rates:   config.DefaultRates(),
		now:     time.Now,
		player:  player,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.combat.BattleLogCap <= 0 {
		m.combat.BattleLogCap = config.DefaultCombat().BattleLogCap
	}
	m.decider = ai.NewDecider(content, m.src, m.combat.DefaultActionWeight)
	return m
}

// Player returns the player's ship. Callers must not modify it while a
// session is active.
func (m *Manager) Player() *model.Combatant {
	return m.player
}

// Current returns the most recently started session, or nil.
func (m *Manager) Current() *Session {
	return m.current
}

// RepairPlayer restores the player's hull and shield to max and clears
// effects. Not allowed during a session.
func (m *Manager) RepairPlayer() error {
	if m.current != nil && m.current.Active() {
		return ErrSessionInProgress
	}
	m.player.Health = m.player.MaxHealth
	m.player.Shield = m.player.MaxShield
	m.player.ClearEffects()
	return nil
}

// Start begins a session against enemyID. regionID is informational and
// may be empty.
//
// The enemy is created at full hull and shield. The player keeps the hull
// and shield it left the previous session with, but its status effects are
// cleared and all cooldowns start at zero. A destroyed ship cannot launch
// until RepairPlayer restores it.
func (m *Manager) Start(enemyID, regionID string) (*Session, error) {
	if m.current != nil && m.current.Active() {
		return nil, ErrSessionInProgress
	}
	if m.player.IsDestroyed() {
		return nil, fmt.Errorf("starting combat with %q: %w", enemyID, ErrPlayerDestroyed)
	}
	def, ok := m.content.Enemy(enemyID)
	if !ok {
		return nil, fmt.Errorf("starting combat with %q: %w", enemyID, ErrUnknownEnemy)
	}

	m.player.ClearEffects()

	s := &Session{
		id:             uuid.NewString(),
		mgr:            m,
		active:         true,
		turn:           1,
		player:         m.player,
		enemy:          model.NewCombatant(def.MaxHealth, def.MaxShield),
		enemyDef:       def,
		regionID:       regionID,
		cooldowns:      make(map[string]int),
		enemyCooldowns: make(map[string]int),
	}
	m.current = s

	s.appendLog(model.LogSystem, fmt.Sprintf("Hostile contact: %s (hull %d, shield %d).",
		enemyName(def), def.MaxHealth, def.MaxShield))

	slog.Debug("combat session started",
		"session", s.id,
		"enemy", def.ID,
		"region", regionID,
		"player_health", m.player.Health,
		"player_shield", m.player.Shield)
	return s, nil
}

// Resume rebuilds a session from a snapshot. The snapshot's player stats
// replace the manager's player stats.
func (m *Manager) Resume(snap Snapshot) (*Session, error) {
	if m.current != nil && m.current.Active() {
		return nil, ErrSessionInProgress
	}
	def, ok := m.content.Enemy(snap.EnemyID)
	if !ok {
		return nil, fmt.Errorf("resuming session %s: %w", snap.ID, ErrUnknownEnemy)
	}
	if snap.Active == snap.Outcome.IsTerminal() {
		return nil, fmt.Errorf("resuming session %s: active=%v with outcome %q", snap.ID, snap.Active, snap.Outcome)
	}

	*m.player = *snap.Player.Clone()
	enemy := snap.Enemy.Clone()

	s := &Session{
		id:             snap.ID,
		mgr:            m,
		active:         snap.Active,
		turn:           max(snap.Turn, 1),
		player:         m.player,
		enemy:          enemy,
		enemyDef:       def,
		regionID:       snap.RegionID,
		cooldowns:      make(map[string]int, len(snap.Cooldowns)),
		enemyCooldowns: make(map[string]int, len(snap.EnemyCooldowns)),
		log:            append([]model.LogEntry(nil), snap.Log...),
		outcome:        snap.Outcome,
	}
	maps.Copy(s.cooldowns, snap.Cooldowns)
	maps.Copy(s.enemyCooldowns, snap.EnemyCooldowns)
	m.current = s

	slog.Debug("combat session resumed", "session", s.id, "enemy", def.ID, "turn", s.turn)
	return s, nil
}
