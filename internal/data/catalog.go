package data

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownRegion  = errors.New("unknown region")
	ErrInvalidContent = errors.New("invalid content")
)

// Catalog is an immutable set of content tables.
// It is safe for concurrent reads once built.
type Catalog struct {
	actions      map[string]*ActionDef
	enemyActions map[string]*EnemyActionDef
	enemies      map[string]*EnemyDef
	regions      map[string]*RegionDef

	// declaration order, for listings and validation
	actionIDs      []string
	enemyActionIDs []string
	enemyIDs       []string
	regionIDs      []string
}

// NewCatalog indexes the given definitions. Duplicate IDs are rejected.
// The catalog is not validated; call Validate for cross-reference checks.
func NewCatalog(actions []ActionDef, enemyActions []EnemyActionDef, enemies []EnemyDef, regions []RegionDef) (*Catalog, error) {
	c := &Catalog{
		actions:      make(map[string]*ActionDef, len(actions)),
		enemyActions: make(map[string]*EnemyActionDef, len(enemyActions)),
		enemies:      make(map[string]*EnemyDef, len(enemies)),
		regions:      make(map[string]*RegionDef, len(regions)),
	}

	for i := range actions {
		a := &actions[i]
		if _, dup := c.actions[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate action %q", ErrInvalidContent, a.ID)
		}
		c.actions[a.ID] = a
		c.actionIDs = append(c.actionIDs, a.ID)
	}
	for i := range enemyActions {
		a := &enemyActions[i]
		if _, dup := c.enemyActions[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate enemy action %q", ErrInvalidContent, a.ID)
		}
		c.enemyActions[a.ID] = a
		c.enemyActionIDs = append(c.enemyActionIDs, a.ID)
	}
	for i := range enemies {
		e := &enemies[i]
		if _, dup := c.enemies[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate enemy %q", ErrInvalidContent, e.ID)
		}
		c.enemies[e.ID] = e
		c.enemyIDs = append(c.enemyIDs, e.ID)
	}
	for i := range regions {
		r := &regions[i]
		if _, dup := c.regions[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate region %q", ErrInvalidContent, r.ID)
		}
		c.regions[r.ID] = r
		c.regionIDs = append(c.regionIDs, r.ID)
	}

	return c, nil
}

// Action returns the player action with the given ID.
func (c *Catalog) Action(id string) (*ActionDef, bool) {
	a, ok := c.actions[id]
	return a, ok
}

// EnemyAction returns the enemy move with the given ID.
func (c *Catalog) EnemyAction(id string) (*EnemyActionDef, bool) {
	a, ok := c.enemyActions[id]
	return a, ok
}

// Enemy returns the enemy template with the given ID.
func (c *Catalog) Enemy(id string) (*EnemyDef, bool) {
	e, ok := c.enemies[id]
	return e, ok
}

// Region returns the region with the given ID.
func (c *Catalog) Region(id string) (*RegionDef, bool) {
	r, ok := c.regions[id]
	return r, ok
}

// Actions returns all player actions in declaration order.
func (c *Catalog) Actions() []*ActionDef {
	out := make([]*ActionDef, 0, len(c.actionIDs))
	for _, id := range c.actionIDs {
		out = append(out, c.actions[id])
	}
	return out
}

// Enemies returns all enemies in declaration order.
func (c *Catalog) Enemies() []*EnemyDef {
	out := make([]*EnemyDef, 0, len(c.enemyIDs))
	for _, id := range c.enemyIDs {
		out = append(out, c.enemies[id])
	}
	return out
}

// Regions returns all regions in declaration order.
func (c *Catalog) Regions() []*RegionDef {
	out := make([]*RegionDef, 0, len(c.regionIDs))
	for _, id := range c.regionIDs {
		out = append(out, c.regions[id])
	}
	return out
}

// EnemyActions resolves the move list of an enemy, skipping unknown IDs.
func (c *Catalog) EnemyActions(e *EnemyDef) []*EnemyActionDef {
	out := make([]*EnemyActionDef, 0, len(e.Actions))
	for _, id := range e.Actions {
		if a, ok := c.enemyActions[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Validate checks value ranges and cross references between tables.
// All problems are reported, joined into one error.
func (c *Catalog) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidContent}, args...)...))
	}

	for _, id := range c.actionIDs {
		a := c.actions[id]
		if a.ID == "" {
			bad("action with empty id")
		}
		if a.Cost.Amount < 0 {
			bad("action %q: negative cost", a.ID)
		}
		if a.Cost.Amount > 0 && !a.Cost.Resource.Valid() {
			bad("action %q: unknown cost resource %q", a.ID, a.Cost.Resource)
		}
		if a.Damage < 0 || a.ShieldRepair < 0 || a.HullRepair < 0 {
			bad("action %q: negative damage or repair", a.ID)
		}
		if a.Cooldown < 0 {
			bad("action %q: negative cooldown", a.ID)
		}
		if a.Effect != nil {
			validateEffect(bad, "action "+a.ID, a.Effect)
		}
	}

	for _, id := range c.enemyActionIDs {
		a := c.enemyActions[id]
		if a.Damage < 0 || a.ShieldDamage < 0 {
			bad("enemy action %q: negative damage", id)
		}
		if a.Cooldown < 0 {
			bad("enemy action %q: negative cooldown", id)
		}
		if a.Effect != nil {
			validateEffect(bad, "enemy action "+id, a.Effect)
		}
		cond := a.Condition
		switch cond.Type {
		case "", ConditionAlways:
		case ConditionRandom:
			if cond.Probability == nil {
				bad("enemy action %q: RANDOM condition without probability", id)
			}
		case ConditionHealthThreshold, ConditionShieldThreshold:
			if cond.Threshold < 0 || cond.Threshold > 1 {
				bad("enemy action %q: threshold %v out of [0,1]", id, cond.Threshold)
			}
		default:
			bad("enemy action %q: unknown condition %q", id, cond.Type)
		}
		if p := cond.Probability; p != nil && (*p < 0 || *p > 1) {
			bad("enemy action %q: probability %v out of [0,1]", id, *p)
		}
	}

	for _, id := range c.enemyIDs {
		e := c.enemies[id]
		if e.MaxHealth <= 0 {
			bad("enemy %q: max_health must be positive", id)
		}
		if e.MaxShield < 0 {
			bad("enemy %q: negative max_shield", id)
		}
		if len(e.Actions) == 0 {
			bad("enemy %q: no actions", id)
		}
		for _, aid := range e.Actions {
			if _, ok := c.enemyActions[aid]; !ok {
				bad("enemy %q: unknown action %q", id, aid)
			}
		}
		for _, l := range e.Loot {
			if !l.Resource.Valid() {
				bad("enemy %q: unknown loot resource %q", id, l.Resource)
			}
			if l.Amount <= 0 {
				bad("enemy %q: loot amount must be positive", id)
			}
			if p := l.Probability; p != nil && (*p < 0 || *p > 1) {
				bad("enemy %q: loot probability %v out of [0,1]", id, *p)
			}
		}
		if e.Region != "" {
			if _, ok := c.regions[e.Region]; !ok {
				bad("enemy %q: unknown region %q", id, e.Region)
			}
		}
	}

	for _, id := range c.regionIDs {
		r := c.regions[id]
		if r.EncounterChance < 0 || r.EncounterChance > 1 {
			bad("region %q: encounter_chance %v out of [0,1]", id, r.EncounterChance)
		}
		for _, w := range r.Enemies {
			if w.Weight <= 0 {
				bad("region %q: weight for %q must be positive", id, w.EnemyID)
			}
			if _, ok := c.enemies[w.EnemyID]; !ok {
				bad("region %q: unknown enemy %q", id, w.EnemyID)
			}
		}
	}

	return errors.Join(errs...)
}

func validateEffect(bad func(string, ...any), owner string, e *EffectSpec) {
	if !e.Kind.Valid() {
		bad("%s: unknown effect kind %q", owner, e.Kind)
	}
	if e.Duration <= 0 {
		bad("%s: effect duration must be positive", owner)
	}
	if e.Magnitude < 0 {
		bad("%s: negative effect magnitude", owner)
	}
}

// RegionEnemies returns enemy IDs of a region sorted by descending weight.
func (c *Catalog) RegionEnemies(regionID string) ([]string, error) {
	r, ok := c.regions[regionID]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", regionID, ErrUnknownRegion)
	}
	ws := slices.Clone(r.Enemies)
	slices.SortStableFunc(ws, func(a, b EnemyWeight) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
	ids := make([]string, len(ws))
	for i, w := range ws {
		ids[i] = w.EnemyID
	}
	return ids, nil
}
