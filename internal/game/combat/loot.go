package combat

import (
	"math"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/model"
)

// ResolveLoot rolls the enemy's loot table once.
//
// Each entry gets one independent draw in [0,1) and is granted iff the draw
// is below its probability (scaled by rates.LootChanceMultiplier). Entries
// without a probability are always granted. Amounts are scaled by
// rates.LootAmountMultiplier, floored, and never drop below 1.
// A nil rates means x1 multipliers.
func ResolveLoot(enemy *data.EnemyDef, rates *config.Rates, src roll.Source) []model.ResourceDelta {
	if len(enemy.Loot) == 0 {
		return nil
	}

	chanceMultiplier := 1.0
	amountMultiplier := 1.0
	if rates != nil {
		chanceMultiplier = rates.LootChanceMultiplier
		amountMultiplier = rates.LootAmountMultiplier
	}

	var results []model.ResourceDelta
	for _, entry := range enemy.Loot {
		if entry.Amount <= 0 {
			continue
		}
		if entry.Probability != nil {
			if !roll.Chance(src, *entry.Probability*chanceMultiplier) {
				continue
			}
		}

		amount := int64(math.Floor(float64(entry.Amount)*amountMultiplier + 1e-9))
		if amount <= 0 {
			amount = 1
		}

		results = append(results, model.ResourceDelta{
			Kind:   entry.Resource,
			Amount: amount,
		})
	}

	return results
}
