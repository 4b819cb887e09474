package combat

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

//go:generate go tool mockgen -destination=./mocks/ledger_mock.go -package=mocks . Ledger

// Ledger is the player's resource store. The engine never touches storage
// directly; every cost, penalty and reward goes through it.
type Ledger interface {
	// HasSufficient reports whether amount of kind can be paid.
	HasSufficient(kind model.ResourceKind, amount int64) bool
	// ApplyDelta adds amount (negative to debit) to the pool.
	ApplyDelta(kind model.ResourceKind, amount int64)
	// Balance returns the current amount in the pool.
	Balance(kind model.ResourceKind) int64
}

// Content is read-only access to the content tables.
// *data.Catalog implements it.
type Content interface {
	Action(id string) (*data.ActionDef, bool)
	Actions() []*data.ActionDef
	Enemy(id string) (*data.EnemyDef, bool)
	EnemyAction(id string) (*data.EnemyActionDef, bool)
	Region(id string) (*data.RegionDef, bool)
}

var _ Content = (*data.Catalog)(nil)
