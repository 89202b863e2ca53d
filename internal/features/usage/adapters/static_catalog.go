package adapters

import (
	"loadtracker/internal/features/usage/domain"
)

// StaticTierCatalog serves a fixed list of tiers.
type StaticTierCatalog struct {
	tiers []domain.Tier
}

// NewStaticTierCatalog creates a catalog over tiers, preserving their order.
func NewStaticTierCatalog(tiers []domain.Tier) *StaticTierCatalog {
	return &StaticTierCatalog{tiers: tiers}
}

// Tier looks up a tier by name.
func (c *StaticTierCatalog) Tier(name string) (domain.Tier, bool) {
	for _, t := range c.tiers {
		if t.Name == name {
			return t, true
		}
	}
	return domain.Tier{}, false
}

// Tiers returns a copy of the catalog.
func (c *StaticTierCatalog) Tiers() []domain.Tier {
	out := make([]domain.Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}
