package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
)

func TestMemory_Basics(t *testing.T) {
	m := NewMemory(map[model.ResourceKind]int64{model.ResourceEnergy: 10})

	assert.True(t, m.HasSufficient(model.ResourceEnergy, 10))
	assert.False(t, m.HasSufficient(model.ResourceEnergy, 11))
	assert.False(t, m.HasSufficient(model.ResourceScrap, 1))
	assert.True(t, m.HasSufficient(model.ResourceScrap, 0))

	m.ApplyDelta(model.ResourceEnergy, -4)
	m.ApplyDelta(model.ResourceScrap, 3)
	assert.Equal(t, int64(6), m.Balance(model.ResourceEnergy))
	assert.Equal(t, int64(3), m.Balance(model.ResourceScrap))
}

func TestMemory_NeverNegative(t *testing.T) {
	m := NewMemory(map[model.ResourceKind]int64{model.ResourceCrew: -5})
	assert.Equal(t, int64(0), m.Balance(model.ResourceCrew))

	m.ApplyDelta(model.ResourceCrew, 2)
	m.ApplyDelta(model.ResourceCrew, -10)
	assert.Equal(t, int64(0), m.Balance(model.ResourceCrew))
}

func TestMemory_BalancesIsCopy(t *testing.T) {
	m := NewMemory(map[model.ResourceKind]int64{model.ResourceInsight: 3})
	b := m.Balances()
	b[model.ResourceInsight] = 99

	assert.Equal(t, int64(3), m.Balance(model.ResourceInsight))

	m.Replace(map[model.ResourceKind]int64{model.ResourceScrap: 7})
	assert.Equal(t, int64(0), m.Balance(model.ResourceInsight))
	assert.Equal(t, int64(7), m.Balance(model.ResourceScrap))
}

func TestFromConfig(t *testing.T) {
	m, err := FromConfig(map[string]int64{"ENERGY": 40, "CREW": 6})
	require.NoError(t, err)
	assert.Equal(t, int64(40), m.Balance(model.ResourceEnergy))
	assert.Equal(t, int64(6), m.Balance(model.ResourceCrew))

	_, err = FromConfig(map[string]int64{"GOLD": 1})
	assert.Error(t, err)
}

func TestMemory_ConcurrentDeltas(t *testing.T) {
	m := NewMemory(nil)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.ApplyDelta(model.ResourceEnergy, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5000), m.Balance(model.ResourceEnergy))
}
