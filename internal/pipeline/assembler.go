package pipeline

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
)

// StructuralError is the only error Convert raises: the input is missing
// one of the two fields nothing can be assembled without.
type StructuralError struct {
	Field string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("itinerary is missing required field %q", e.Field)
}

// ValidationReport is the advisory pre-flight result for a SourceItinerary.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a SourceItinerary without converting it. Only a missing
// tripInfo or a missing/empty days list flips Valid to false; everything
// else is reported and left to best-effort assembly. It never fails.
func Validate(src *request_models.SourceItinerary) ValidationReport {
	report := ValidationReport{Valid: true, Errors: []string{}, Warnings: []string{}}
	if src == nil {
		report.Valid = false
		report.Errors = append(report.Errors, "missing field 'tripInfo'", "missing or empty field 'days'")
		return report
	}

	if src.TripInfo == nil {
		report.Valid = false
		report.Errors = append(report.Errors, "missing field 'tripInfo'")
	} else {
		for _, field := range []struct {
			name  string
			value string
		}{
			{"from", src.TripInfo.From},
			{"to", src.TripInfo.To},
			{"duration", src.TripInfo.Duration},
		} {
			if strings.TrimSpace(field.value) == "" {
				report.Warnings = append(report.Warnings, fmt.Sprintf("tripInfo: field '%s' is empty", field.name))
			}
		}
	}

	if len(src.Days) == 0 {
		report.Valid = false
		report.Errors = append(report.Errors, "missing or empty field 'days'")
	}
	for i, day := range src.Days {
		if day.Day <= 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("Day %d: missing field 'day'", i+1))
		}
		if day.Movements == nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Day %d: missing field 'movements'", i+1))
		}
	}
	return report
}

// Assembler orchestrates the locator, classifier and parsers over a whole
// itinerary. Conversions are independent and a single Assembler is safe for
// concurrent use: its random sources are mutex-guarded.
type Assembler struct {
	locator *Locator
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{
		locator: NewLocator(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// NewSeededAssembler fixes the jitter and km estimate for deterministic tests.
func NewSeededAssembler(seed int64) *Assembler {
	return &Assembler{
		locator: NewSeededLocator(seed),
		rng:     rand.New(rand.NewSource(seed)),
		now:     time.Now,
	}
}

// Convert enriches a SourceItinerary into a NormalizedItinerary. Activities
// are processed in source order; days and the trip get aggregated stats.
// It returns a StructuralError when tripInfo is absent or days is empty,
// and otherwise always succeeds, degrading unparsable fields to defaults.
func (a *Assembler) Convert(src *request_models.SourceItinerary) (*response_models.NormalizedItinerary, error) {
	if src == nil || src.TripInfo == nil {
		return nil, &StructuralError{Field: "tripInfo"}
	}
	if len(src.Days) == 0 {
		return nil, &StructuralError{Field: "days"}
	}

	info := src.TripInfo
	now := a.now()

	out := &response_models.NormalizedItinerary{
		Metadata: response_models.ItineraryMetadata{
			ID:          tripSlug(info.From, info.To, now.Year()),
			Title:       fmt.Sprintf("%s - %s %d", info.From, info.To, now.Year()),
			Description: info.Description,
			Created:     now.Format(time.RFC3339),
			Modified:    now.Format(time.RFC3339),
			Tags:        []string{},
		},
		Days: make([]response_models.NormalizedDay, 0, len(src.Days)),
	}

	var tripCost CostRange
	totalKm := 0
	totalMinutes := 0

	for i, day := range src.Days {
		dayNumber := day.Day
		if dayNumber <= 0 {
			dayNumber = i + 1
		}

		normalized := response_models.NormalizedDay{
			DayNumber:  dayNumber,
			Date:       now.AddDate(0, 0, i).Format("2006-01-02"),
			Activities: []response_models.NormalizedActivity{},
		}

		position := 0
		for _, movement := range day.Movements {
			for _, activity := range movement.Activities {
				position++
				normalized.Activities = append(normalized.Activities,
					a.enrichActivity(activity, info.To, dayNumber, position))

				if cr := ParseCostRange(activity.Cost); !cr.IsZero() {
					tripCost.Min += cr.Min
					tripCost.Max += cr.Max
				}
			}
		}

		normalized.Stats = a.calculateDayStats(normalized.Activities)
		totalKm += normalized.Stats.Km
		totalMinutes += durationMinutes(normalized.Stats.Time)
		out.Days = append(out.Days, normalized)
	}

	out.Metadata.TotalKm = totalKm
	out.Metadata.TotalTime = formatMinutes(totalMinutes)
	out.Metadata.TotalCost = formatCostRange(tripCost)
	out.Metadata.Duration = tripDayCount(info.Duration, len(src.Days))
	return out, nil
}

// enrichActivity runs the classifier, locator and parsers over a single
// source activity. Every activity is located at the trip destination, not
// its own text: per-activity geocoding is deliberately out of scope.
func (a *Assembler) enrichActivity(
	activity request_models.SourceActivity,
	destination string,
	dayNumber, position int,
) response_models.NormalizedActivity {

	activityType := Classify(activity.Description, activity.Alternatives)

	alternatives := activity.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}

	out := response_models.NormalizedActivity{
		ID:           fmt.Sprintf("day%d-%d", dayNumber, position),
		Type:         string(activityType),
		Name:         activityName(activity),
		Time:         startTime(activity.Time),
		Coords:       a.locator.Locate(destination),
		Description:  activity.Description,
		Duration:     ParseDuration(activity.Time),
		Cost:         activity.Cost,
		Required:     activityType == TypeMeal || activityType == TypeAccommodation,
		Alternatives: alternatives,
		Notes:        activity.Notes,
	}

	switch activityType {
	case TypeMeal:
		out.Subtype = string(ClassifyMealSubtype(activity.Description, activity.Time))
		out.Cuisine = "italiana"
		out.Specialties = extractSpecialties(activity.Description, activity.Notes, activity.Alternatives)
	case TypeAccommodation:
		out.AccommodationType = accommodationType(activity.Description)
		out.CheckIn = "14:00"
		if out.Time != "" {
			out.CheckIn = out.Time
		}
		out.CheckOut = "10:00"
	}
	return out
}

// calculateDayStats aggregates a day's enriched activities. Km is a
// synthetic estimate, not real geography.
func (a *Assembler) calculateDayStats(activities []response_models.NormalizedActivity) response_models.DayStats {
	costMin := 0
	minutes := 0
	stops := 0
	for _, activity := range activities {
		costMin += ParseCostRange(activity.Cost).Min
		minutes += durationMinutes(activity.Duration)
		if activity.Type != string(TypeTravel) {
			stops++
		}
	}

	cost := "0€"
	if costMin > 0 {
		cost = fmt.Sprintf("%d-%d€", costMin, int(math.Ceil(float64(costMin)*1.3)))
	}
	drivingTime := "30min"
	if stops > 5 {
		drivingTime = "45min"
	}

	a.mu.Lock()
	km := 5 + a.rng.Intn(20)
	a.mu.Unlock()

	return response_models.DayStats{
		Km:          km,
		Time:        formatMinutes(minutes),
		Cost:        cost,
		DrivingTime: drivingTime,
		Stops:       stops,
	}
}

func formatCostRange(c CostRange) string {
	if c.IsZero() {
		return "0€"
	}
	return fmt.Sprintf("%d-%d€", c.Min, c.Max)
}

// tripDayCount prefers the declared duration when it parses as a positive
// integer, otherwise the number of days actually present.
func tripDayCount(declared string, actual int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(declared)); err == nil && n > 0 {
		return n
	}
	return actual
}

func tripSlug(from, to string, year int) string {
	slug := strings.ToLower(fmt.Sprintf("%s-%s-%d", from, to, year))
	return strings.ReplaceAll(slug, " ", "-")
}

// activityName prefers the first alternative, then the description up to
// the first period or comma.
func activityName(activity request_models.SourceActivity) string {
	if len(activity.Alternatives) > 0 {
		return strings.TrimSpace(activity.Alternatives[0])
	}
	name := activity.Description
	if cut := strings.IndexAny(name, ".,"); cut >= 0 {
		name = name[:cut]
	}
	return strings.TrimSpace(name)
}

func startTime(timeRange string) string {
	start, _, _ := strings.Cut(timeRange, "-")
	return strings.TrimSpace(start)
}

var accommodationKinds = []string{"b&b", "ostello", "agriturismo", "appartamento", "resort"}

func accommodationType(description string) string {
	text := strings.ToLower(description)
	for _, kind := range accommodationKinds {
		if strings.Contains(text, kind) {
			return kind
		}
	}
	return "hotel"
}

// Specialty phrases are short spans of letters, optionally two words.
var specialtyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:provare|assaggiare|specialità|piatto|gustare)\s+(?:il\s|la\s|le\s|lo\s|i\s|l')?([a-zà-ù]+(?:\s+[a-zà-ù]+)?)`),
	regexp.MustCompile(`([a-zà-ù]+(?:\s+[a-zà-ù]+)?)\s+(?:tipic[oahe]|local[ei]|tradizional[ei])`),
	regexp.MustCompile(`(?:con|di)\s+([a-zà-ù]+(?:\s+[a-zà-ù]+)?)`),
}

// extractSpecialties pulls up to three deduplicated dish phrases out of a
// meal's description, notes and alternatives.
func extractSpecialties(description, notes string, alternatives []string) []string {
	text := strings.ToLower(strings.Join(append([]string{description, notes}, alternatives...), " "))

	seen := make(map[string]bool)
	specialties := []string{}
	for _, pattern := range specialtyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			phrase := strings.TrimSpace(match[1])
			if phrase == "" || seen[phrase] {
				continue
			}
			seen[phrase] = true
			specialties = append(specialties, phrase)
			if len(specialties) == 3 {
				return specialties
			}
		}
	}
	return specialties
}
