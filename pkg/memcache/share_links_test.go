package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareLinksSetGet(t *testing.T) {
	store := NewShareLinks()
	store.Set("abc", []byte("payload"), time.Hour)

	payload, ok := store.Get("abc")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), payload)

	// Reads do not consume the entry.
	_, ok = store.Get("abc")
	assert.True(t, ok)
}

func TestShareLinksExpiry(t *testing.T) {
	store := NewShareLinks()
	store.Set("abc", []byte("payload"), -time.Second)

	_, ok := store.Get("abc")
	assert.False(t, ok)
}

func TestShareLinksMissing(t *testing.T) {
	store := NewShareLinks()

	_, ok := store.Get("missing")
	assert.False(t, ok)
}
