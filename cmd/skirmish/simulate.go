package main

import (
	"fmt"
	"io"
	"maps"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/ledger"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/spawn"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run many autopilot battles and report outcome rates",
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringP("region", "r", "", "region to draw enemies from")
	simulateCmd.Flags().IntP("runs", "n", 1000, "number of battles")
	simulateCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "battles run concurrently")
	simulateCmd.Flags().Uint64("seed", 1, "base random seed; run i uses seed+i")
	simulateCmd.Flags().Int("max-turns", 200, "retreat after this many rounds")
	_ = simulateCmd.MarkFlagRequired("region")
}

type runResult struct {
	EnemyID string
	Outcome model.Outcome
	Turns   int
	Loot    []model.ResourceDelta
}

type enemyStats struct {
	Fights int
	Wins   int
}

type simSummary struct {
	Runs      int
	ByOutcome map[model.Outcome]int
	ByEnemy   map[string]*enemyStats
	AvgTurns  float64
	Loot      map[model.ResourceKind]int64
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	regionID, _ := cmd.Flags().GetString("region")
	runs, _ := cmd.Flags().GetInt("runs")
	workers, _ := cmd.Flags().GetInt("workers")
	seed, _ := cmd.Flags().GetUint64("seed")
	maxTurns, _ := cmd.Flags().GetInt("max-turns")

	region, ok := app.catalog.Region(regionID)
	if !ok {
		return fmt.Errorf("region %q: %w", regionID, data.ErrUnknownRegion)
	}
	if runs <= 0 || workers <= 0 {
		return fmt.Errorf("runs and workers must be positive")
	}

	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := simulateOne(app.cfg, app.catalog, region, seed+uint64(i), maxTurns)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), region, summarize(results))
	return nil
}

// simulateOne fights one battle on its own ledger, ship and random source.
func simulateOne(cfg config.Engine, catalog *data.Catalog, region *data.RegionDef, seed uint64, maxTurns int) (runResult, error) {
	src := roll.Seeded(seed)

	enemyID, err := spawn.NewSelector(catalog, src).SelectEnemy(region)
	if err != nil {
		return runResult{}, err
	}
	l, err := ledger.FromConfig(cfg.Player.Resources)
	if err != nil {
		return runResult{}, err
	}
	player := model.NewCombatant(cfg.Player.MaxHealth, cfg.Player.MaxShield)

	mgr := combat.NewManager(catalog, l, player,
		combat.WithSource(src),
		combat.WithCombatConfig(cfg.Combat),
		combat.WithRates(cfg.Rates),
	)
	s, err := mgr.Start(enemyID, region.ID)
	if err != nil {
		return runResult{}, err
	}

	res := runResult{EnemyID: enemyID}
	for s.Active() {
		id, ok := autopilot(s, catalog)
		if !ok || s.Turn() > maxTurns {
			if _, err := s.Retreat(); err != nil {
				return runResult{}, err
			}
			break
		}
		ar, err := s.PerformPlayerAction(id)
		if err != nil {
			return runResult{}, err
		}
		res.Loot = append(res.Loot, ar.Loot...)
	}

	res.Outcome = s.Outcome()
	res.Turns = s.Turn()
	return res, nil
}

func summarize(results []runResult) simSummary {
	sum := simSummary{
		Runs:      len(results),
		ByOutcome: make(map[model.Outcome]int),
		ByEnemy:   make(map[string]*enemyStats),
		Loot:      make(map[model.ResourceKind]int64),
	}
	turns := 0
	for _, r := range results {
		sum.ByOutcome[r.Outcome]++
		st, ok := sum.ByEnemy[r.EnemyID]
		if !ok {
			st = &enemyStats{}
			sum.ByEnemy[r.EnemyID] = st
		}
		st.Fights++
		if r.Outcome == model.OutcomeVictory {
			st.Wins++
		}
		turns += r.Turns
		for _, d := range r.Loot {
			sum.Loot[d.Kind] += d.Amount
		}
	}
	if len(results) > 0 {
		sum.AvgTurns = float64(turns) / float64(len(results))
	}
	return sum
}

func printSummary(out io.Writer, region *data.RegionDef, sum simSummary) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s: %d battles", region.Name, sum.Runs)))
	for _, o := range []model.Outcome{model.OutcomeVictory, model.OutcomeDefeat, model.OutcomeRetreat} {
		n := sum.ByOutcome[o]
		fmt.Fprintf(out, "  %-8s %6d  %5.1f%%\n", o, n, percent(n, sum.Runs))
	}
	fmt.Fprintf(out, "  avg turns %.1f\n", sum.AvgTurns)

	fmt.Fprintln(out, headerStyle.Render("By enemy"))
	for _, id := range slices.Sorted(maps.Keys(sum.ByEnemy)) {
		st := sum.ByEnemy[id]
		fmt.Fprintf(out, "  %-16s %6d fights  %5.1f%% won\n", id, st.Fights, percent(st.Wins, st.Fights))
	}

	fmt.Fprintln(out, headerStyle.Render("Loot"))
	for _, k := range model.ResourceKinds {
		fmt.Fprintf(out, "  %-8s %d\n", k, sum.Loot[k])
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
