package model

// Combatant holds the mutable combat stats of the player ship or an enemy.
//
// Invariants: 0 <= Health <= MaxHealth, 0 <= Shield <= MaxShield.
// All mutation goes through the methods below so the invariants hold.
type Combatant struct {
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	Shield    int            `json:"shield"`
	MaxShield int            `json:"max_shield"`
	Effects   []StatusEffect `json:"effects,omitempty"`
}

// NewCombatant creates a combatant at full health and shield.
func NewCombatant(maxHealth, maxShield int) *Combatant {
	maxHealth = max(maxHealth, 0)
	maxShield = max(maxShield, 0)
	return &Combatant{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Shield:    maxShield,
		MaxShield: maxShield,
	}
}

// IsDestroyed returns true when the hull is gone.
func (c *Combatant) IsDestroyed() bool {
	return c.Health <= 0
}

// HealthFraction returns Health/MaxHealth, or 0 for a zero max.
func (c *Combatant) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return float64(c.Health) / float64(c.MaxHealth)
}

// ShieldFraction returns Shield/MaxShield, or 0 for a zero max.
func (c *Combatant) ShieldFraction() float64 {
	if c.MaxShield <= 0 {
		return 0
	}
	return float64(c.Shield) / float64(c.MaxShield)
}

// DamageShield removes up to amount from the shield and returns what was absorbed.
func (c *Combatant) DamageShield(amount int) int {
	if amount <= 0 || c.Shield <= 0 {
		return 0
	}
	absorbed := min(c.Shield, amount)
	c.Shield -= absorbed
	return absorbed
}

// DamageHealth removes up to amount from the hull and returns what was removed.
func (c *Combatant) DamageHealth(amount int) int {
	if amount <= 0 || c.Health <= 0 {
		return 0
	}
	removed := min(c.Health, amount)
	c.Health -= removed
	return removed
}

// RepairShield adds amount to the shield, clamped to MaxShield.
// Returns the amount actually restored.
func (c *Combatant) RepairShield(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.Shield
	c.Shield = min(c.Shield+amount, c.MaxShield)
	return c.Shield - before
}

// RepairHealth adds amount to the hull, clamped to MaxHealth.
// Returns the amount actually restored.
func (c *Combatant) RepairHealth(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.Health
	c.Health = min(c.Health+amount, c.MaxHealth)
	return c.Health - before
}

// AddEffect appends a new effect instance. No merging with existing instances.
func (c *Combatant) AddEffect(e StatusEffect) {
	c.Effects = append(c.Effects, e)
}

// ClearEffects removes all status effects.
func (c *Combatant) ClearEffects() {
	c.Effects = nil
}

// Clone returns a deep copy.
func (c *Combatant) Clone() *Combatant {
	cp := *c
	if c.Effects != nil {
		cp.Effects = make([]StatusEffect, len(c.Effects))
		copy(cp.Effects, c.Effects)
	}
	return &cp
}
