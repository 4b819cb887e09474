package spawn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/roll"
)

// ErrNoEnemies is returned for a region without spawn candidates.
var ErrNoEnemies = errors.New("region has no enemies")

// RegionSource resolves regions. *data.Catalog implements it.
type RegionSource interface {
	Region(id string) (*data.RegionDef, bool)
}

// Selector picks which enemy a region spawns.
// It holds no mutable state besides the random source.
type Selector struct {
	regions RegionSource
	src     roll.Source
}

// NewSelector creates a Selector. A nil src uses the global generator.
func NewSelector(regions RegionSource, src roll.Source) *Selector {
	if src == nil {
		src = roll.Global()
	}
	return &Selector{regions: regions, src: src}
}

// SelectEnemy draws an enemy ID from the region's weighted list.
// Weights are consumed in list order; if rounding leaves nothing selected
// the last enemy is returned.
func (s *Selector) SelectEnemy(region *data.RegionDef) (string, error) {
	if len(region.Enemies) == 0 {
		return "", fmt.Errorf("region %q: %w", region.ID, ErrNoEnemies)
	}
	w, _ := roll.Weighted(s.src, region.Enemies, func(w data.EnemyWeight) float64 {
		return w.Weight
	})
	return w.EnemyID, nil
}

// Roll checks the region's encounter chance and, when it hits, selects an
// enemy. ok is false when no encounter happens.
func (s *Selector) Roll(regionID string) (enemyID string, ok bool, err error) {
	region, found := s.regions.Region(regionID)
	if !found {
		return "", false, fmt.Errorf("region %q: %w", regionID, data.ErrUnknownRegion)
	}
	if len(region.Enemies) == 0 || !roll.Chance(s.src, region.EncounterChance) {
		return "", false, nil
	}

	enemyID, err = s.SelectEnemy(region)
	if err != nil {
		return "", false, err
	}
	slog.Debug("encounter rolled", "region", regionID, "enemy", enemyID)
	return enemyID, true, nil
}
