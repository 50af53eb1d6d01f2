package mem

import (
	"sync"
	"time"
)

// ShareLinkStore keeps finished itineraries retrievable by opaque id for a
// limited time. Entries are read many times until they expire; they are
// never consumed.
type ShareLinkStore interface {
	Set(id string, payload []byte, ttl time.Duration)

	// Get returns the payload for id if not expired.
	Get(id string) ([]byte, bool)
}

type entry struct {
	payload   []byte
	expiresAt time.Time
}

type ShareLinks struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewShareLinks() *ShareLinks {
	return &ShareLinks{
		data: make(map[string]entry),
	}
}

func (s *ShareLinks) Set(id string, payload []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ShareLinks) Get(id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	return e.payload, true
}
