package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("q:palermo", "results")
	got, ok := c.Get("q:palermo")
	assert.True(t, ok)
	assert.Equal(t, "results", got)
}

func TestCache_Expiry(t *testing.T) {
	c := New[int](10 * time.Millisecond)

	c.Set("k", 42)
	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)

	// A later write reaps the expired entry.
	c.Set("other", 1)
	assert.Equal(t, 1, c.Size())
}

func TestCache_Clear(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
