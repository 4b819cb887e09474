package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	systemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	playerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	enemyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
	analysisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")).Italic(true)

	statusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func renderEntry(e model.LogEntry) string {
	prefix := fmt.Sprintf("[%s] ", e.Timestamp.Format("15:04:05"))
	switch e.Type {
	case model.LogPlayer:
		return prefix + playerStyle.Render(e.Text)
	case model.LogEnemy:
		return prefix + enemyStyle.Render(e.Text)
	case model.LogAnalysis:
		return prefix + analysisStyle.Render(e.Text)
	default:
		return prefix + systemStyle.Render(e.Text)
	}
}

func bar(cur, maxVal, width int) string {
	if maxVal <= 0 {
		return strings.Repeat("·", width)
	}
	filled := cur * width / maxVal
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

func renderShip(name string, c *model.Combatant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(name))
	fmt.Fprintf(&b, "hull   %s %d/%d\n", bar(c.Health, c.MaxHealth, 20), c.Health, c.MaxHealth)
	fmt.Fprintf(&b, "shield %s %d/%d", bar(c.Shield, c.MaxShield, 20), c.Shield, c.MaxShield)
	for _, e := range c.Effects {
		fmt.Fprintf(&b, "\n%s x%.2f (%d)", e.Kind, e.Magnitude, e.RemainingTurns)
	}
	return b.String()
}

func renderStatus(s *combat.Session, balances map[model.ResourceKind]int64) string {
	ships := lipgloss.JoinHorizontal(lipgloss.Top,
		statusBoxStyle.Render(renderShip("You", s.Player())),
		statusBoxStyle.Render(renderShip(s.EnemyDef().Name, s.Enemy())),
	)

	var res []string
	for _, k := range model.ResourceKinds {
		res = append(res, fmt.Sprintf("%s %d", k, balances[k]))
	}
	return titleStyle.Render(fmt.Sprintf("Turn %d", s.Turn())) + "\n" +
		ships + "\n" +
		dimStyle.Render(strings.Join(res, "  "))
}

func renderActions(s *combat.Session, catalog *data.Catalog) string {
	ready := make(map[string]bool)
	for _, id := range s.Available() {
		ready[id] = true
	}

	var b strings.Builder
	for _, a := range catalog.Actions() {
		line := fmt.Sprintf("  %-16s %-9s %s", a.ID, a.Category, describeAction(a))
		switch {
		case ready[a.ID]:
			b.WriteString(line)
		case s.Cooldown(a.ID) > 0:
			b.WriteString(dimStyle.Render(fmt.Sprintf("%s  [ready in %d]", line, s.Cooldown(a.ID))))
		default:
			b.WriteString(dimStyle.Render(line + "  [insufficient]"))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  retreat          lose %.0f%% of every resource pool\n", app.cfg.Combat.RetreatPenalty*100)
	b.WriteString("  quit             leave the fight suspended")
	return b.String()
}

func describeAction(a *data.ActionDef) string {
	var parts []string
	if a.Damage > 0 {
		parts = append(parts, fmt.Sprintf("dmg %d", a.Damage))
	}
	if a.ShieldRepair > 0 {
		parts = append(parts, fmt.Sprintf("shield +%d", a.ShieldRepair))
	}
	if a.HullRepair > 0 {
		parts = append(parts, fmt.Sprintf("hull +%d", a.HullRepair))
	}
	if a.Effect != nil {
		parts = append(parts, fmt.Sprintf("%s %.2f/%dt", a.Effect.Kind, a.Effect.Magnitude, a.Effect.Duration))
	}
	if a.Cost.Amount > 0 {
		parts = append(parts, fmt.Sprintf("cost %d %s", a.Cost.Amount, a.Cost.Resource))
	}
	if a.Cooldown > 0 {
		parts = append(parts, fmt.Sprintf("cd %d", a.Cooldown))
	}
	return strings.Join(parts, ", ")
}
