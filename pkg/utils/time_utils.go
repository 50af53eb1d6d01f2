package utils

import "time"

// Italy time location (CET/CEST)
var itLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Rome"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsIT converts an epoch value in seconds to Italian time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsIT(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(itLoc)
}

func FormatRFC3339IT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(itLoc).Format(time.RFC3339)
}

func FormatISODateIT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(itLoc).Format("2006-01-02")
}
