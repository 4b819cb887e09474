package combat

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/effect"
	"github.com/udisondev/skirmish/internal/model"
)

// Session is one encounter between the player and an enemy.
//
// It has two states: active, and terminal once an outcome is set. All
// mutation happens inside PerformPlayerAction and Retreat, which run to
// completion before returning.
type Session struct {
	id  string
	mgr *Manager

	active  bool
	turn    int
	outcome model.Outcome

	player   *model.Combatant
	enemy    *model.Combatant
	enemyDef *data.EnemyDef
	regionID string

	cooldowns      map[string]int
	enemyCooldowns map[string]int

	log []model.LogEntry

	busy atomic.Bool
}

// ActionResult reports what happened during one call to PerformPlayerAction.
type ActionResult struct {
	Turn   int
	Action string

	// Player is what the player's action did. Zero when PlayerStunned.
	Player        Outcome
	PlayerStunned bool

	// EnemyAction is the enemy move ID, empty when the enemy did not act.
	EnemyAction  string
	Enemy        *Outcome
	EnemyStunned bool

	// Outcome is set when the round ended the session.
	Outcome model.Outcome
	// Loot lists rewards granted on victory.
	Loot []model.ResourceDelta
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Active reports whether the session still accepts actions.
func (s *Session) Active() bool { return s.active }

// Turn returns the current round number, starting at 1.
func (s *Session) Turn() int { return s.turn }

// Outcome returns the terminal outcome, or OutcomeNone while active.
func (s *Session) Outcome() model.Outcome { return s.outcome }

// Player returns the player's stats. Read only.
func (s *Session) Player() *model.Combatant { return s.player }

// Enemy returns the enemy's stats. Read only.
func (s *Session) Enemy() *model.Combatant { return s.enemy }

// EnemyDef returns the enemy template.
func (s *Session) EnemyDef() *data.EnemyDef { return s.enemyDef }

// RegionID returns the region the encounter happened in, if any.
func (s *Session) RegionID() string { return s.regionID }

// Cooldown returns the rounds left before the player action can be reused.
func (s *Session) Cooldown(actionID string) int { return s.cooldowns[actionID] }

// EnemyCooldown returns the rounds left before the enemy move can be reused.
func (s *Session) EnemyCooldown(actionID string) int { return s.enemyCooldowns[actionID] }

// Log returns a copy of the battle log, oldest first.
func (s *Session) Log() []model.LogEntry {
	return slices.Clone(s.log)
}

// Available returns the IDs of player actions that are off cooldown and
// affordable right now. Empty when the session is over.
func (s *Session) Available() []string {
	if !s.active {
		return nil
	}
	var ids []string
	for _, a := range s.mgr.content.Actions() {
		if s.cooldowns[a.ID] > 0 {
			continue
		}
		if a.Cost.Amount > 0 && !s.mgr.ledger.HasSufficient(a.Cost.Resource, a.Cost.Amount) {
			continue
		}
		ids = append(ids, a.ID)
	}
	return ids
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:             s.id,
		Active:         s.active,
		Turn:           s.turn,
		Player:         *s.player.Clone(),
		Enemy:          *s.enemy.Clone(),
		EnemyID:        s.enemyDef.ID,
		RegionID:       s.regionID,
		Cooldowns:      maps.Clone(s.cooldowns),
		EnemyCooldowns: maps.Clone(s.enemyCooldowns),
		Log:            slices.Clone(s.log),
		Outcome:        s.outcome,
	}
}

// PerformPlayerAction resolves one full round starting with the player's
// action.
//
// Validation (active session, known action, cooldown, affordability)
// happens before anything is written. Then the cost is paid, the action
// resolves against the enemy, and its cooldown starts. If the enemy is
// destroyed the session ends in victory and the enemy does not answer.
// Otherwise the enemy acts; if the player's hull fails the session ends in
// defeat. A round that ends neither way decrements cooldowns on both sides
// and advances the turn counter.
//
// Status effects tick at the end of their carrier's own turn, stunned or
// not. An effect with duration d therefore covers the carrier's next d
// turns no matter which side applied it.
func (s *Session) PerformPlayerAction(actionID string) (ActionResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return ActionResult{}, ErrBusy
	}
	defer s.busy.Store(false)

	if !s.active {
		return ActionResult{}, ErrNotActive
	}
	def, ok := s.mgr.content.Action(actionID)
	if !ok {
		return ActionResult{}, fmt.Errorf("action %q: %w", actionID, ErrUnknownAction)
	}
	if left := s.cooldowns[actionID]; left > 0 {
		return ActionResult{}, fmt.Errorf("action %q ready in %d rounds: %w", actionID, left, ErrOnCooldown)
	}
	if def.Cost.Amount > 0 && !s.mgr.ledger.HasSufficient(def.Cost.Resource, def.Cost.Amount) {
		return ActionResult{}, fmt.Errorf("action %q needs %d %s: %w",
			actionID, def.Cost.Amount, def.Cost.Resource, ErrInsufficientResource)
	}

	res := ActionResult{Turn: s.turn, Action: actionID}

	if s.mgr.combat.StunSkipsTurn && effect.Has(s.player, model.StatusStun) {
		res.PlayerStunned = true
		s.appendLog(model.LogSystem, "Your systems are stunned. You lose the turn.")
	} else {
		if def.Cost.Amount > 0 {
			s.mgr.ledger.ApplyDelta(def.Cost.Resource, -def.Cost.Amount)
		}
		res.Player = ApplyAction(s.player, s.enemy, MoveFromAction(def))
		s.cooldowns[actionID] = def.Cooldown
		s.appendLog(model.LogPlayer, describe("You", moveName(def.Name, def.ID), res.Player))

		slog.Debug("player action resolved",
			"session", s.id,
			"turn", s.turn,
			"action", actionID,
			"damage", res.Player.Damage,
			"enemy_health", s.enemy.Health,
			"enemy_shield", s.enemy.Shield)
	}
	effect.Tick(s.player)

	if s.enemy.IsDestroyed() {
		res.Outcome = model.OutcomeVictory
		res.Loot = s.end(model.OutcomeVictory)
		return res, nil
	}

	s.enemyTurn(&res)

	if s.player.IsDestroyed() {
		res.Outcome = model.OutcomeDefeat
		s.end(model.OutcomeDefeat)
		return res, nil
	}

	s.appendLog(model.LogAnalysis, fmt.Sprintf("%s hull %d/%d, shield %d/%d | Your hull %d/%d, shield %d/%d",
		enemyName(s.enemyDef),
		s.enemy.Health, s.enemy.MaxHealth, s.enemy.Shield, s.enemy.MaxShield,
		s.player.Health, s.player.MaxHealth, s.player.Shield, s.player.MaxShield))

	s.endRound()
	return res, nil
}

// Retreat abandons the encounter. Each resource pool loses
// floor(balance * retreat_penalty), computed independently. Returns the
// deltas applied.
func (s *Session) Retreat() ([]model.ResourceDelta, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	if !s.active {
		return nil, ErrNotActive
	}

	penalty := s.mgr.combat.RetreatPenalty
	var (
		losses []model.ResourceDelta
		parts  []string
	)
	for _, kind := range model.ResourceKinds {
		balance := s.mgr.ledger.Balance(kind)
		if balance <= 0 {
			continue
		}
		loss := int64(math.Floor(float64(balance)*penalty + 1e-9))
		if loss <= 0 {
			continue
		}
		s.mgr.ledger.ApplyDelta(kind, -loss)
		losses = append(losses, model.ResourceDelta{Kind: kind, Amount: -loss})
		parts = append(parts, fmt.Sprintf("%d %s", loss, kind))
	}

	if len(parts) == 0 {
		s.appendLog(model.LogSystem, "Emergency jump engaged. Nothing was lost in the escape.")
	} else {
		s.appendLog(model.LogSystem, "Emergency jump engaged. Lost "+strings.Join(parts, ", ")+".")
	}

	s.end(model.OutcomeRetreat)
	return losses, nil
}

// enemyTurn picks and resolves the enemy's move against the player, then
// ticks the enemy's own effects.
func (s *Session) enemyTurn(res *ActionResult) {
	defer effect.Tick(s.enemy)

	if s.mgr.combat.StunSkipsTurn && effect.Has(s.enemy, model.StatusStun) {
		res.EnemyStunned = true
		s.appendLog(model.LogSystem, enemyName(s.enemyDef)+" is stunned and cannot act.")
		return
	}

	mv := s.mgr.decider.SelectAction(s.enemyDef, s)
	if mv == nil {
		s.appendLog(model.LogEnemy, enemyName(s.enemyDef)+" holds position.")
		return
	}

	out := ApplyAction(s.enemy, s.player, MoveFromEnemyAction(mv))
	s.enemyCooldowns[mv.ID] = mv.Cooldown
	res.EnemyAction = mv.ID
	res.Enemy = &out
	s.appendLog(model.LogEnemy, describe(enemyName(s.enemyDef), moveName(mv.Name, mv.ID), out))

	slog.Debug("enemy action resolved",
		"session", s.id,
		"turn", s.turn,
		"action", mv.ID,
		"damage", out.Damage,
		"player_health", s.player.Health,
		"player_shield", s.player.Shield)
}

// endRound decays cooldowns and advances the turn.
func (s *Session) endRound() {
	decrement(s.cooldowns)
	decrement(s.enemyCooldowns)
	s.turn++
}

// end moves the session to its terminal state. On victory the loot table is
// rolled and credited. Returns granted loot.
func (s *Session) end(outcome model.Outcome) []model.ResourceDelta {
	s.active = false
	s.outcome = outcome

	name := enemyName(s.enemyDef)
	switch outcome {
	case model.OutcomeVictory:
		s.appendLog(model.LogSystem, fmt.Sprintf("%s destroyed. Victory!", name))
	case model.OutcomeDefeat:
		s.appendLog(model.LogSystem, fmt.Sprintf("Hull breach. %s wins. Defeat.", name))
	case model.OutcomeRetreat:
		s.appendLog(model.LogSystem, fmt.Sprintf("Escaped from %s.", name))
	}

	var loot []model.ResourceDelta
	if outcome == model.OutcomeVictory {
		loot = ResolveLoot(s.enemyDef, &s.mgr.rates, s.mgr.src)
		for _, d := range loot {
			s.mgr.ledger.ApplyDelta(d.Kind, d.Amount)
			s.appendLog(model.LogSystem, fmt.Sprintf("Salvaged %d %s.", d.Amount, d.Kind))
		}
	}

	slog.Debug("combat session ended",
		"session", s.id,
		"enemy", s.enemyDef.ID,
		"outcome", outcome,
		"turn", s.turn,
		"loot", len(loot))

	if s.mgr.onEnd != nil {
		s.mgr.onEnd(s, outcome)
	}
	return loot
}

// appendLog adds an entry and evicts the oldest ones beyond the cap.
func (s *Session) appendLog(typ model.LogType, text string) {
	entry := model.LogEntry{
		ID:        uuid.NewString(),
		Type:      typ,
		Text:      text,
		Timestamp: s.mgr.now(),
	}
	s.log = append(s.log, entry)
	if over := len(s.log) - s.mgr.combat.BattleLogCap; over > 0 {
		s.log = slices.Delete(s.log, 0, over)
	}
	if s.mgr.logSink != nil {
		s.mgr.logSink(entry)
	}
}

func decrement(cooldowns map[string]int) {
	for id, left := range cooldowns {
		if left > 0 {
			cooldowns[id] = left - 1
		}
	}
}

func enemyName(def *data.EnemyDef) string {
	if def.Name != "" {
		return def.Name
	}
	return def.ID
}

func moveName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}

// describe renders an outcome as one log line.
func describe(actor, move string, out Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s used %s", actor, move)

	var parts []string
	if out.Damage > 0 || out.ShieldDamage > 0 {
		hit := fmt.Sprintf("shield -%d, hull -%d", out.ShieldDamage, out.HullDamage)
		if out.Exposed {
			hit += ", shields bypassed"
		}
		parts = append(parts, hit)
	}
	if out.ShieldRepaired > 0 {
		parts = append(parts, fmt.Sprintf("shield +%d", out.ShieldRepaired))
	}
	if out.HullRepaired > 0 {
		parts = append(parts, fmt.Sprintf("hull +%d", out.HullRepaired))
	}
	if out.Effect != nil {
		parts = append(parts, fmt.Sprintf("%s for %d turns", out.Effect.Kind, out.Effect.RemainingTurns))
	}

	if len(parts) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(")")
	}
	b.WriteString(".")
	return b.String()
}
