package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFixedClock_Now_Frozen(t *testing.T) {
	c := NewFixedClock(base)

	assert.Equal(t, base, c.Now())
	assert.Equal(t, base, c.Now(), "repeated reads should not move the clock")
}

func TestFixedClock_Advance(t *testing.T) {
	c := NewFixedClock(base)

	c.Advance(48 * time.Hour)
	assert.Equal(t, base.Add(48*time.Hour), c.Now())

	c.Advance(-24 * time.Hour)
	assert.Equal(t, base.Add(24*time.Hour), c.Now(), "negative advance moves the clock back")
}

func TestFixedClock_Set(t *testing.T) {
	c := NewFixedClock(base)

	target := time.Date(2027, 6, 15, 12, 0, 0, 0, time.UTC)
	c.Set(target)
	assert.Equal(t, target, c.Now())
}
