package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/skirmish/internal/db"
)

var historyCmd = &cobra.Command{
	Use:         "history",
	Short:       "List a player's stored fights",
	Annotations: map[string]string{"content": "skip"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		playerID, _ := cmd.Flags().GetString("player")
		limit, _ := cmd.Flags().GetInt("limit")

		if !app.cfg.Database.Enabled {
			return fmt.Errorf("history needs database.enabled in the config")
		}
		database, err := db.New(cmd.Context(), app.cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer database.Close()

		rows, err := database.Sessions().ListByPlayer(cmd.Context(), playerID, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Fights of "+playerID))
		for _, r := range rows {
			outcome := string(r.Outcome)
			if r.Active {
				outcome = "SUSPENDED"
			}
			fmt.Fprintf(out, "  %s  %-16s %-14s %-10s turn %d\n",
				r.UpdatedAt.Format("2006-01-02 15:04"), r.EnemyID, r.RegionID, outcome, r.Turn)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringP("player", "p", "pilot", "player id")
	historyCmd.Flags().IntP("limit", "l", 20, "most recent fights to show")
}
