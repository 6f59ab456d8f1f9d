package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_StaysStill(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := NewFixedClock(start)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start, clock.Now())
}

func TestFixedClock_Advance(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := NewFixedClock(start)

	got := clock.Advance(90 * time.Minute)

	assert.Equal(t, start.Add(90*time.Minute), got)
	assert.Equal(t, got, clock.Now())
}
