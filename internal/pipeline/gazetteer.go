package pipeline

import (
	"log"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// fallbackCoord is the geographic center of Italy, returned for any city
// the gazetteer does not know.
var fallbackCoord = [2]float64{41.8719, 12.5674}

// gazetteer maps normalized city keys to base coordinates. Keys are
// lowercase with underscores for spaces and plain vowels for accented ones.
var gazetteer = map[string][2]float64{
	"roma":         {41.9028, 12.4964},
	"milano":       {45.4642, 9.1900},
	"napoli":       {40.8518, 14.2681},
	"torino":       {45.0703, 7.6869},
	"firenze":      {43.7696, 11.2558},
	"venezia":      {45.4408, 12.3155},
	"bologna":      {44.4949, 11.3426},
	"genova":       {44.4056, 8.9463},
	"palermo":      {38.1157, 13.3615},
	"verona":       {45.4384, 10.9916},
	"pisa":         {43.7228, 10.4017},
	"siena":        {43.3188, 11.3308},
	"perugia":      {43.1107, 12.3908},
	"bari":         {41.1171, 16.8719},
	"catania":      {37.5079, 15.0830},
	"cagliari":     {39.2238, 9.1217},
	"trieste":      {45.6495, 13.7768},
	"padova":       {45.4064, 11.8768},
	"rimini":       {44.0678, 12.5695},
	"lecce":        {40.3515, 18.1750},
	"matera":       {40.6664, 16.6043},
	"amalfi":       {40.6340, 14.6027},
	"sorrento":     {40.6263, 14.3758},
	"positano":     {40.6281, 14.4850},
	"como":         {45.8081, 9.0852},
	"bergamo":      {45.6983, 9.6773},
	"lucca":        {43.8429, 10.5027},
	"trento":       {46.0748, 11.1217},
	"cinque_terre": {44.1280, 9.7120},
}

// maxJitter bounds the random offset applied per axis, roughly 250-300m.
const maxJitter = 0.0025

// Locator resolves free-text city names to coordinates. All randomness is
// owned by the instance so tests can seed it; the mutex makes a single
// Locator safe to share across goroutines.
type Locator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocator() *Locator {
	return &Locator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewSeededLocator(seed int64) *Locator {
	return &Locator{rng: rand.New(rand.NewSource(seed))}
}

// Locate returns jittered coordinates for the given city, or the center of
// Italy when the city is unknown. It never fails.
func (l *Locator) Locate(city string) [2]float64 {
	base, ok := gazetteer[cityKey(city)]
	if !ok {
		log.Printf("gazetteer: unknown city %q, using fallback coordinates", city)
		return fallbackCoord
	}
	return [2]float64{l.jitter(base[0]), l.jitter(base[1])}
}

var diacritics = strings.NewReplacer(
	"à", "a", "á", "a",
	"è", "e", "é", "e",
	"ì", "i", "í", "i",
	"ò", "o", "ó", "o",
	"ù", "u", "ú", "u",
)

func cityKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = diacritics.Replace(key)
	return strings.ReplaceAll(key, " ", "_")
}

func (l *Locator) jitter(v float64) float64 {
	l.mu.Lock()
	offset := (l.rng.Float64()*2 - 1) * maxJitter
	l.mu.Unlock()
	return math.Round((v+offset)*1e6) / 1e6
}
