package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name      string
		timeRange string
		expected  string
	}{
		{"full hours", "19:00-21:00", "2h"},
		{"hours and minutes", "09:15-11:45", "2h30m"},
		{"minutes only", "10:00-10:45", "45m"},
		{"missing end", "10:00-", "1h"},
		{"no separator", "10:00", "1h"},
		{"end before start", "15:00-14:00", "1h"},
		{"zero span", "12:00-12:00", "1h"},
		{"garbage", "presto", "1h"},
		{"empty", "", "1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDuration(tt.timeRange))
		})
	}
}

func TestParseDurationRoundTrip(t *testing.T) {
	// For well-formed ranges the formatted duration re-parses to end-start.
	tests := []struct {
		timeRange string
		minutes   int
	}{
		{"09:00-10:00", 60},
		{"09:15-11:45", 150},
		{"07:30-07:45", 15},
		{"00:00-23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.timeRange, func(t *testing.T) {
			assert.Equal(t, tt.minutes, durationMinutes(ParseDuration(tt.timeRange)))
		})
	}
}

func TestDurationMinutesDefaultsToOneHour(t *testing.T) {
	assert.Equal(t, 60, durationMinutes("presto"))
	assert.Equal(t, 60, durationMinutes(""))
}

func TestParseCostRange(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		expected CostRange
	}{
		{"euro range", "€10-15", CostRange{Min: 10, Max: 15}},
		{"single value", "€25", CostRange{Min: 25, Max: 25}},
		{"spaced range", "10 - 15 euro", CostRange{Min: 10, Max: 15}},
		{"free in italian", "Gratuito", CostRange{}},
		{"free in english", "Free", CostRange{}},
		{"empty", "", CostRange{}},
		{"no digits", "da definire", CostRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCostRange(tt.cost))
		})
	}
}

func TestCostRangeIsZero(t *testing.T) {
	assert.True(t, CostRange{}.IsZero())
	assert.False(t, CostRange{Min: 0, Max: 10}.IsZero())
	assert.False(t, CostRange{Min: 5, Max: 5}.IsZero())
}
