package ledger

import (
	"fmt"
	"maps"
	"sync"

	"github.com/udisondev/skirmish/internal/model"
)

// Memory is an in-process resource ledger.
// Balances never go below zero: a debit larger than the balance empties the pool.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type Memory struct {
	mu       sync.RWMutex
	balances map[model.ResourceKind]int64
}

// NewMemory creates a ledger seeded with the given balances.
func NewMemory(initial map[model.ResourceKind]int64) *Memory {
	m := &Memory{balances: make(map[model.ResourceKind]int64, len(model.ResourceKinds))}
	for k, v := range initial {
		m.balances[k] = max(v, 0)
	}
	return m
}

// FromConfig builds a ledger from config-style string keys.
func FromConfig(resources map[string]int64) (*Memory, error) {
	initial := make(map[model.ResourceKind]int64, len(resources))
	for name, amount := range resources {
		kind, err := model.ParseResourceKind(name)
		if err != nil {
			return nil, fmt.Errorf("player resources: %w", err)
		}
		initial[kind] = amount
	}
	return NewMemory(initial), nil
}

// HasSufficient reports whether amount of kind can be paid.
func (m *Memory) HasSufficient(kind model.ResourceKind, amount int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[kind] >= amount
}

// ApplyDelta adds amount to the pool, clamping at zero.
func (m *Memory) ApplyDelta(kind model.ResourceKind, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[kind] = max(m.balances[kind]+amount, 0)
}

// Balance returns the current amount of kind.
func (m *Memory) Balance(kind model.ResourceKind) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[kind]
}

// Balances returns a copy of all pools.
func (m *Memory) Balances() map[model.ResourceKind]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.balances)
}

// Replace overwrites all pools, e.g. after loading from storage.
func (m *Memory) Replace(balances map[model.ResourceKind]int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.balances)
	for k, v := range balances {
		m.balances[k] = max(v, 0)
	}
}
