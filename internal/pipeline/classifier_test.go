package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		alternatives []string
		expected     ActivityType
	}{
		{"meal from restaurant", "Cena in trattoria tipica", nil, TypeMeal},
		{"accommodation", "Check-in in hotel e sistemazione in camera", nil, TypeAccommodation},
		{"attraction", "Visita al museo e al duomo", nil, TypeAttraction},
		{"shopping", "Shopping al mercato e souvenir", nil, TypeShopping},
		{"travel", "Partenza in treno dalla stazione", nil, TypeTravel},
		{"alternatives count", "Qualcosa da fare", []string{"Pizzeria da Michele", "Osteria del Porto"}, TypeMeal},
		{"no keywords defaults to attraction", "Mattinata libera", nil, TypeAttraction},
		{"empty input defaults to attraction", "", nil, TypeAttraction},
		{"tie resolves to attraction", "Pranzo in hotel", nil, TypeAttraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.description, tt.alternatives))
		})
	}
}

func TestClassifyMealSubtypeKeywords(t *testing.T) {
	tests := []struct {
		description string
		expected    MealSubtype
	}{
		{"Colazione al bar", SubtypeBreakfast},
		{"Pranzo veloce", SubtypeLunch},
		{"Cena romantica", SubtypeDinner},
		{"Aperitivo in piazza", SubtypeAperitif},
		{"Gelato artigianale", SubtypeDessert},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMealSubtype(tt.description, ""))
		})
	}
}

func TestClassifyMealSubtypeHourBands(t *testing.T) {
	tests := []struct {
		name      string
		timeRange string
		expected  MealSubtype
	}{
		{"morning is breakfast", "08:00-09:00", SubtypeBreakfast},
		{"midday is lunch", "13:00-14:30", SubtypeLunch},
		{"early evening is aperitif", "18:00-19:00", SubtypeAperitif},
		{"evening is dinner", "20:30-22:00", SubtypeDinner},
		{"after midnight is dinner", "01:00-02:00", SubtypeDinner},
		{"band gap defaults to lunch", "11:00-12:00", SubtypeLunch},
		{"no time defaults to lunch", "", SubtypeLunch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMealSubtype("Pasto al ristorante", tt.timeRange))
		})
	}
}

func TestClassifyMealSubtypeKeywordBeatsHour(t *testing.T) {
	// Explicit keywords win over the time band.
	assert.Equal(t, SubtypeDinner, ClassifyMealSubtype("Cena anticipata", "08:00-09:00"))
}
