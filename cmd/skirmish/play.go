package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udisondev/skirmish/internal/db"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/roll"
	"github.com/udisondev/skirmish/internal/ledger"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/spawn"
)

// maxScans bounds how many encounter rolls play makes before giving up.
const maxScans = 10

var errNoContact = errors.New("no contact in region")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fight an encounter interactively",
	Long: `Rolls an encounter in the given region (or fights --enemy directly) and
reads one action ID per line from stdin. Type 'retreat' to escape or 'quit'
to leave the fight suspended.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringP("region", "r", "", "region to scan for an encounter")
	playCmd.Flags().StringP("enemy", "e", "", "fight this enemy instead of rolling an encounter")
	playCmd.Flags().StringP("player", "p", "pilot", "player id used for persistence")
	playCmd.Flags().Uint64("seed", 0, "random seed (0 picks a random one)")
	playCmd.MarkFlagsOneRequired("region", "enemy")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := app.cfg
	out := cmd.OutOrStdout()

	regionID, _ := cmd.Flags().GetString("region")
	enemyID, _ := cmd.Flags().GetString("enemy")
	playerID, _ := cmd.Flags().GetString("player")
	seed, _ := cmd.Flags().GetUint64("seed")

	l, err := ledger.FromConfig(cfg.Player.Resources)
	if err != nil {
		return err
	}
	player := model.NewCombatant(cfg.Player.MaxHealth, cfg.Player.MaxShield)

	var st *store
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer database.Close()
		st = newStore(database, playerID)
		if err := st.loadResources(ctx, l); err != nil {
			return fmt.Errorf("loading resources: %w", err)
		}
		if err := st.loadShip(ctx, player); err != nil {
			return fmt.Errorf("loading ship: %w", err)
		}
	}

	var src roll.Source = roll.Global()
	if seed != 0 {
		src = roll.Seeded(seed)
	}

	mgr := combat.NewManager(app.catalog, l, player,
		combat.WithSource(src),
		combat.WithCombatConfig(cfg.Combat),
		combat.WithRates(cfg.Rates),
		combat.WithLogSink(func(e model.LogEntry) {
			fmt.Fprintln(out, renderEntry(e))
		}),
	)

	s, err := openSession(ctx, out, mgr, st, spawn.NewSelector(app.catalog, src), regionID, enemyID)
	if err != nil {
		return err
	}

	if err := fight(ctx, cmd.InOrStdin(), out, s, l); err != nil {
		return err
	}

	if st != nil {
		if err := st.save(ctx, l, s); err != nil {
			return err
		}
	}

	if s.Active() {
		fmt.Fprintln(out, dimStyle.Render("Fight suspended."))
	} else {
		fmt.Fprintln(out, titleStyle.Render(string(s.Outcome())))
	}
	return nil
}

// openSession resumes the player's unfinished fight or starts a new one.
func openSession(ctx context.Context, out io.Writer, mgr *combat.Manager, st *store, sel *spawn.Selector, regionID, enemyID string) (*combat.Session, error) {
	if st != nil {
		snap, ok, err := st.activeSession(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading active session: %w", err)
		}
		if ok {
			s, err := mgr.Resume(snap)
			if err != nil {
				return nil, err
			}
			fmt.Fprintln(out, dimStyle.Render("Resuming suspended fight."))
			for _, e := range s.Log() {
				fmt.Fprintln(out, renderEntry(e))
			}
			return s, nil
		}
	}

	if enemyID == "" {
		for range maxScans {
			id, ok, err := sel.Roll(regionID)
			if err != nil {
				return nil, err
			}
			if ok {
				enemyID = id
				break
			}
			fmt.Fprintln(out, dimStyle.Render("Sector quiet. Scanning again..."))
		}
		if enemyID == "" {
			return nil, fmt.Errorf("region %q after %d scans: %w", regionID, maxScans, errNoContact)
		}
	}

	if err := towIfDestroyed(out, mgr); err != nil {
		return nil, err
	}
	return mgr.Start(enemyID, regionID)
}

// towIfDestroyed repairs a ship lost in an earlier fight so it can launch.
func towIfDestroyed(out io.Writer, mgr *combat.Manager) error {
	if !mgr.Player().IsDestroyed() {
		return nil
	}
	fmt.Fprintln(out, dimStyle.Render("Hull destroyed in the last fight. Towed to dock and repaired."))
	return mgr.RepairPlayer()
}

// fight runs the input loop until the session ends, the player quits or
// input runs out.
func fight(ctx context.Context, in io.Reader, out io.Writer, s *combat.Session, l *ledger.Memory) error {
	scanner := bufio.NewScanner(in)
	for s.Active() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, renderStatus(s, l.Balances()))
		fmt.Fprintln(out, renderActions(s, app.catalog))
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}
		var err error
		switch input := strings.TrimSpace(scanner.Text()); input {
		case "":
			continue
		case "quit":
			return nil
		case "retreat":
			_, err = s.Retreat()
		default:
			_, err = s.PerformPlayerAction(input)
		}

		switch {
		case err == nil:
		case errors.Is(err, combat.ErrUnknownAction),
			errors.Is(err, combat.ErrOnCooldown),
			errors.Is(err, combat.ErrInsufficientResource):
			fmt.Fprintln(out, enemyStyle.Render(err.Error()))
		default:
			return err
		}
	}
	return nil
}
