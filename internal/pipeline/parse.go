package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// defaultDuration is substituted for missing or unparsable time ranges.
const defaultDuration = "1h"

// ParseDuration turns a "HH:MM-HH:MM" range into a compact duration string
// such as "2h" or "1h30m". Malformed ranges and non-positive spans yield
// the 1h default; the function never fails.
func ParseDuration(timeRange string) string {
	parts := strings.SplitN(timeRange, "-", 2)
	if len(parts) < 2 {
		return defaultDuration
	}
	start, okStart := minuteOfDay(parts[0])
	end, okEnd := minuteOfDay(parts[1])
	if !okStart || !okEnd || end-start <= 0 {
		return defaultDuration
	}
	return formatMinutes(end - start)
}

// minuteOfDay parses "HH:MM" (or bare "HH") into minutes since midnight.
func minuteOfDay(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	hm := strings.SplitN(s, ":", 2)
	hour, err := strconv.Atoi(strings.TrimSpace(hm[0]))
	if err != nil {
		return 0, false
	}
	minute := 0
	if len(hm) == 2 {
		minute, _ = strconv.Atoi(strings.TrimSpace(hm[1]))
	}
	return hour*60 + minute, true
}

func formatMinutes(total int) string {
	hours, minutes := total/60, total%60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

var durationRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// durationMinutes re-parses a duration string produced by ParseDuration.
// Anything unrecognized counts as one hour, matching the parse default.
func durationMinutes(d string) int {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(d))
	if m == nil || (m[1] == "" && m[2] == "") {
		return 60
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// CostRange is a parsed numeric cost interval in whole euros.
type CostRange struct {
	Min int
	Max int
}

// IsZero reports whether the range carries no cost, as for "Gratuito" or
// unparsable strings. Zero ranges are excluded from aggregate totals.
func (c CostRange) IsZero() bool {
	return c.Min == 0 && c.Max == 0
}

var costRe = regexp.MustCompile(`(\d+)(?:\s*-\s*(\d+))?`)

// ParseCostRange extracts the first integer in a free-text cost string as
// the minimum and an optional second integer after a dash as the maximum.
// Strings without digits parse to {0,0}; the function never fails.
func ParseCostRange(cost string) CostRange {
	m := costRe.FindStringSubmatch(cost)
	if m == nil {
		return CostRange{}
	}
	min, _ := strconv.Atoi(m[1])
	max := min
	if m[2] != "" {
		if v, err := strconv.Atoi(m[2]); err == nil {
			max = v
		}
	}
	return CostRange{Min: min, Max: max}
}
