// Package catalog holds the read-only appliance archetype catalogue.
// It is loaded once at startup and injected into the components that
// need it; after construction it is never mutated, so concurrent reads
// need no locking.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed appliances.json
var appliancesJSON []byte

type UsageKind string

const (
	Continuous UsageKind = "continuous"
	PerUse     UsageKind = "perUse"
)

// Valid reports whether k is one of the two recognized usage kinds.
// Anything else is rejected at the input boundary rather than treated
// as a zero-energy appliance.
func (k UsageKind) Valid() bool {
	return k == Continuous || k == PerUse
}

// Archetype describes the power characteristics of one appliance type.
// Continuous archetypes carry AverageWatts and DefaultHoursPerDay,
// per-use archetypes carry AverageWattsPerUse and DefaultUsesPerDay.
type Archetype struct {
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	UsageKind          UsageKind `json:"usageType"`
	AverageWatts       float64   `json:"averageWatts,omitempty"`
	DefaultHoursPerDay float64   `json:"defaultHoursPerDay,omitempty"`
	AverageWattsPerUse float64   `json:"averageWattsPerUse,omitempty"`
	DefaultUsesPerDay  float64   `json:"defaultUsesPerDay,omitempty"`
}

type Catalog struct {
	archetypes []Archetype
	byName     map[string]Archetype
}

// New builds a catalog from the given archetypes, validating each entry.
func New(archetypes []Archetype) (*Catalog, error) {
	c := &Catalog{
		archetypes: archetypes,
		byName:     make(map[string]Archetype, len(archetypes)),
	}

	for _, a := range archetypes {
		if a.Name == "" {
			return nil, fmt.Errorf("archetype with empty name")
		}
		if !a.UsageKind.Valid() {
			return nil, fmt.Errorf("archetype %q: unknown usage type %q", a.Name, a.UsageKind)
		}

		key := strings.ToLower(a.Name)
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("duplicate archetype name %q", a.Name)
		}
		c.byName[key] = a
	}

	return c, nil
}

// Load parses the embedded appliances.json into a Catalog. A failure
// here is fatal at startup; it is never a runtime condition.
func Load() (*Catalog, error) {
	var archetypes []Archetype
	if err := json.Unmarshal(appliancesJSON, &archetypes); err != nil {
		return nil, fmt.Errorf("parse appliances.json: %w", err)
	}

	return New(archetypes)
}

// Find resolves name to an archetype with a case-insensitive exact
// match. The second return is false when no archetype matches.
func (c *Catalog) Find(name string) (Archetype, bool) {
	a, ok := c.byName[strings.ToLower(name)]
	return a, ok
}

// All returns the full catalogue in declaration order.
func (c *Catalog) All() []Archetype {
	out := make([]Archetype, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}
