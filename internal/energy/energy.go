// Package energy derives daily energy and cost figures from an
// appliance archetype and a user's usage record.
package energy

import "github.com/liamo132/currently-server/internal/catalog"

// Calculator converts usage records into daily kWh and cost estimates.
// PricePerKWh comes from configuration; the calculator itself is pure.
type Calculator struct {
	PricePerKWh float64
}

func NewCalculator(pricePerKWh float64) Calculator {
	return Calculator{PricePerKWh: pricePerKWh}
}

// DailyKWh computes the estimated daily energy use in kWh. For
// continuous appliances: averageWatts * hoursPerDay / 1000. For
// per-use appliances: averageWattsPerUse * usesPerDay / 1000. The
// caller validates the usage kind and quantity before this runs; an
// unset kind yields zero.
func DailyKWh(kind catalog.UsageKind, arch catalog.Archetype, hoursPerDay, usesPerDay float64) float64 {
	switch kind {
	case catalog.Continuous:
		return arch.AverageWatts * hoursPerDay / 1000.0
	case catalog.PerUse:
		return arch.AverageWattsPerUse * usesPerDay / 1000.0
	}

	return 0
}

// Daily returns the daily kWh figure plus its cost at the configured
// tariff. No rounding is applied; formatting is a presentation concern.
func (c Calculator) Daily(kind catalog.UsageKind, arch catalog.Archetype, hoursPerDay, usesPerDay float64) (kwh, cost float64) {
	kwh = DailyKWh(kind, arch, hoursPerDay, usesPerDay)
	return kwh, kwh * c.PricePerKWh
}
