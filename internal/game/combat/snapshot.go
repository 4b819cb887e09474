package combat

import "github.com/udisondev/skirmish/internal/model"

// Snapshot is a serializable copy of a session.
// Hosts persist it as an opaque blob and hand it back to Manager.Resume.
type Snapshot struct {
	ID             string           `json:"id"`
	Active         bool             `json:"active"`
	Turn           int              `json:"turn"`
	Player         model.Combatant  `json:"player"`
	Enemy          model.Combatant  `json:"enemy"`
	EnemyID        string           `json:"enemy_id"`
	RegionID       string           `json:"region_id,omitempty"`
	Cooldowns      map[string]int   `json:"cooldowns,omitempty"`
	EnemyCooldowns map[string]int   `json:"enemy_cooldowns,omitempty"`
	Log            []model.LogEntry `json:"log"`
	Outcome        model.Outcome    `json:"outcome,omitempty"`
}
