package model

import "fmt"

// ResourceKind identifies one of the player's resource pools.
type ResourceKind string

const (
	ResourceEnergy  ResourceKind = "ENERGY"
	ResourceScrap   ResourceKind = "SCRAP"
	ResourceInsight ResourceKind = "INSIGHT"
	ResourceCrew    ResourceKind = "CREW"
)

// ResourceKinds lists all pools in display order.
// Retreat penalties are applied in this order.
var ResourceKinds = []ResourceKind{
	ResourceEnergy,
	ResourceScrap,
	ResourceInsight,
	ResourceCrew,
}

// Valid reports whether k is one of the known pools.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceEnergy, ResourceScrap, ResourceInsight, ResourceCrew:
		return true
	}
	return false
}

// ParseResourceKind converts a content string into a ResourceKind.
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
	return k, nil
}

// ResourceDelta is a signed change to one pool.
type ResourceDelta struct {
	Kind   ResourceKind
	Amount int64
}
