package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "List actions, enemies and regions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		c := app.catalog

		fmt.Fprintln(out, titleStyle.Render("Actions"))
		for _, a := range c.Actions() {
			fmt.Fprintf(out, "  %-16s %-20s %-9s %s\n", a.ID, a.Name, a.Category, describeAction(a))
		}

		fmt.Fprintln(out, titleStyle.Render("Enemies"))
		for _, e := range c.Enemies() {
			var moves []string
			for _, mv := range c.EnemyActions(e) {
				moves = append(moves, mv.ID)
			}
			fmt.Fprintf(out, "  %-16s %-20s hull %4d shield %4d  %s\n",
				e.ID, e.Name, e.MaxHealth, e.MaxShield, dimStyle.Render(strings.Join(moves, ", ")))
		}

		fmt.Fprintln(out, titleStyle.Render("Regions"))
		for _, r := range c.Regions() {
			enemies, err := c.RegionEnemies(r.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-16s %-20s encounter %3.0f%%  %s\n",
				r.ID, r.Name, r.EncounterChance*100, strings.Join(enemies, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
