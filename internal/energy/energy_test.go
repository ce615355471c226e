package energy

import (
	"testing"

	"github.com/liamo132/currently-server/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestDailyKWh(t *testing.T) {
	tcases := []struct {
		name        string
		kind        catalog.UsageKind
		arch        catalog.Archetype
		hoursPerDay float64
		usesPerDay  float64
		expected    float64
	}{
		{
			name:        "fridge running all day",
			kind:        catalog.Continuous,
			arch:        catalog.Archetype{Name: "Fridge", UsageKind: catalog.Continuous, AverageWatts: 150},
			hoursPerDay: 24,
			expected:    3.6,
		},
		{
			name:        "heater for three hours",
			kind:        catalog.Continuous,
			arch:        catalog.Archetype{Name: "Electric Heater", UsageKind: catalog.Continuous, AverageWatts: 2000},
			hoursPerDay: 3,
			expected:    6.0,
		},
		{
			name:       "kettle four times a day",
			kind:       catalog.PerUse,
			arch:       catalog.Archetype{Name: "Kettle", UsageKind: catalog.PerUse, AverageWattsPerUse: 110},
			usesPerDay: 4,
			expected:   0.44,
		},
		{
			name:       "washing machine once a day",
			kind:       catalog.PerUse,
			arch:       catalog.Archetype{Name: "Washing Machine", UsageKind: catalog.PerUse, AverageWattsPerUse: 700},
			usesPerDay: 1,
			expected:   0.7,
		},
		{
			name:     "unset kind yields zero",
			kind:     catalog.UsageKind(""),
			arch:     catalog.Archetype{Name: "Fridge", UsageKind: catalog.Continuous, AverageWatts: 150},
			expected: 0,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			kwh := DailyKWh(tc.kind, tc.arch, tc.hoursPerDay, tc.usesPerDay)
			assert.InDelta(t, tc.expected, kwh, 1e-9, "expected %v kWh", tc.expected)
		})
	}
}

func TestCalculatorDaily(t *testing.T) {
	calc := NewCalculator(0.30)

	kwh, cost := calc.Daily(
		catalog.Continuous,
		catalog.Archetype{Name: "Fridge", UsageKind: catalog.Continuous, AverageWatts: 150},
		24, 0,
	)

	assert.InDelta(t, 3.6, kwh, 1e-9, "expected 3.6 kWh for a fridge at 150W for 24h")
	assert.InDelta(t, 3.6*0.30, cost, 1e-9, "expected cost to be kWh times tariff")
}
