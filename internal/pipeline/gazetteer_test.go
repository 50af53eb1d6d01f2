package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateKnownCity(t *testing.T) {
	locator := NewSeededLocator(1)

	coords := locator.Locate("Roma")
	assert.InDelta(t, 41.9028, coords[0], maxJitter+1e-6)
	assert.InDelta(t, 12.4964, coords[1], maxJitter+1e-6)
}

func TestLocateRoundsToSixDecimals(t *testing.T) {
	locator := NewSeededLocator(7)

	coords := locator.Locate("Milano")
	for _, axis := range coords {
		scaled := axis * 1e6
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6)
	}
}

func TestLocateUnknownCityFallsBack(t *testing.T) {
	locator := NewSeededLocator(1)

	coords := locator.Locate("Atlantide")
	assert.Equal(t, fallbackCoord, coords)
}

func TestLocateIsDeterministicWithSeed(t *testing.T) {
	first := NewSeededLocator(42).Locate("Firenze")
	second := NewSeededLocator(42).Locate("Firenze")
	assert.Equal(t, first, second)
}

func TestCityKeyNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"uppercase", "ROMA", "roma"},
		{"surrounding spaces", "  Milano ", "milano"},
		{"spaces to underscores", "Cinque Terre", "cinque_terre"},
		{"grave accents", "città", "citta"},
		{"acute accents", "perché", "perche"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cityKey(tt.input))
		})
	}
}

func TestLocateJittersDistinctCalls(t *testing.T) {
	locator := NewSeededLocator(3)

	first := locator.Locate("Napoli")
	second := locator.Locate("Napoli")
	assert.NotEqual(t, first, second)
}
