package ai

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/roll"
)

func TestSelectAction_DebugTrace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		slog.SetDefault(prev)
		EnableDebugLogging(false)
	})

	cat := newTestCatalog(t, data.EnemyActionDef{ID: "shot"})
	d := NewDecider(cat, roll.Seeded(1), 0)

	EnableDebugLogging(false)
	d.SelectAction(enemyWith("shot"), fullView())
	assert.Empty(t, buf.String())

	EnableDebugLogging(true)
	assert.True(t, IsDebugEnabled())
	d.SelectAction(enemyWith("shot"), fullView())
	assert.Contains(t, buf.String(), "enemy action selected")
	assert.Contains(t, buf.String(), "action=shot")
}
