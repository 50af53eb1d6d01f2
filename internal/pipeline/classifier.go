package pipeline

import "strings"

type ActivityType string

const (
	TypeMeal          ActivityType = "meal"
	TypeAccommodation ActivityType = "accommodation"
	TypeAttraction    ActivityType = "attraction"
	TypeShopping      ActivityType = "shopping"
	TypeTravel        ActivityType = "travel"
	TypeActivity      ActivityType = "activity"
)

type MealSubtype string

const (
	SubtypeBreakfast MealSubtype = "breakfast"
	SubtypeLunch     MealSubtype = "lunch"
	SubtypeDinner    MealSubtype = "dinner"
	SubtypeAperitif  MealSubtype = "aperitif"
	SubtypeDessert   MealSubtype = "dessert"
)

// keywordBuckets drives the heuristic classification. Attraction has its
// own bucket but is also the default for ties and all-zero scores.
var keywordBuckets = map[ActivityType][]string{
	TypeAccommodation: {
		"hotel", "albergo", "b&b", "check-in", "check in", "ostello",
		"agriturismo", "pernottamento", "camera", "resort",
	},
	TypeMeal: {
		"ristorante", "trattoria", "osteria", "pizzeria", "colazione",
		"pranzo", "cena", "aperitivo", "gelato", "degustazione",
		"mangiare", "brunch", "street food",
	},
	TypeAttraction: {
		"museo", "duomo", "cattedrale", "basilica", "castello", "piazza",
		"visita", "galleria", "parco", "giardino", "monumento", "teatro",
		"belvedere", "panorama",
	},
	TypeShopping: {
		"shopping", "mercato", "negozi", "boutique", "acquisti",
		"souvenir", "outlet",
	},
	TypeTravel: {
		"partenza", "arrivo", "trasferimento", "treno", "volo",
		"aeroporto", "stazione", "autobus", "traghetto", "noleggio",
	},
}

// bucketOrder fixes the scan order so results never depend on map iteration.
var bucketOrder = []ActivityType{
	TypeAccommodation, TypeMeal, TypeAttraction, TypeShopping, TypeTravel,
}

// Classify infers an activity type from its description and alternatives.
// The bucket with the strictly highest keyword count wins; ties and
// all-zero scores resolve to attraction.
func Classify(description string, alternatives []string) ActivityType {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(description))
	for _, alt := range alternatives {
		sb.WriteString(" ")
		sb.WriteString(strings.ToLower(alt))
	}
	text := sb.String()

	best := TypeAttraction
	bestScore := 0
	tied := false
	for _, bucket := range bucketOrder {
		score := 0
		for _, kw := range keywordBuckets[bucket] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = bucket, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if bestScore == 0 || tied {
		return TypeAttraction
	}
	return best
}

var mealKeywords = []struct {
	subtype  MealSubtype
	keywords []string
}{
	{SubtypeBreakfast, []string{"colazione", "breakfast"}},
	{SubtypeLunch, []string{"pranzo", "lunch"}},
	{SubtypeDinner, []string{"cena", "dinner"}},
	{SubtypeAperitif, []string{"aperitivo", "spritz"}},
	{SubtypeDessert, []string{"gelato", "dolce"}},
}

// ClassifyMealSubtype picks a meal subtype from explicit keywords, then
// from the start hour of the activity's time range, defaulting to lunch.
func ClassifyMealSubtype(description, timeRange string) MealSubtype {
	text := strings.ToLower(description)
	for _, mk := range mealKeywords {
		for _, kw := range mk.keywords {
			if strings.Contains(text, kw) {
				return mk.subtype
			}
		}
	}

	if start, ok := minuteOfDay(strings.SplitN(timeRange, "-", 2)[0]); ok {
		hour := start / 60
		switch {
		case hour >= 7 && hour <= 10:
			return SubtypeBreakfast
		case hour >= 12 && hour <= 15:
			return SubtypeLunch
		case hour >= 17 && hour < 19:
			return SubtypeAperitif
		case (hour >= 19 && hour <= 23) || (hour >= 0 && hour <= 2):
			return SubtypeDinner
		}
	}
	return SubtypeLunch
}
