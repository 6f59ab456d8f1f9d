package seqlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	l := Of("apple", "banana", "blueberry")

	got, ok := Find(l, func(s string) bool { return strings.HasPrefix(s, "b") })
	assert.True(t, ok)
	assert.Equal(t, "banana", got)

	_, ok = Find(l, func(s string) bool { return s == "cherry" })
	assert.False(t, ok)
}

func TestIndexFunc(t *testing.T) {
	l := Of(10, 20, 30)

	assert.Equal(t, 1, IndexFunc(l, func(v int) bool { return v == 20 }))
	assert.Equal(t, -1, IndexFunc(l, func(v int) bool { return v == 99 }))
	assert.Equal(t, -1, IndexFunc(New[int](), func(int) bool { return true }))
}

func TestFilter(t *testing.T) {
	l := Of(1, 2, 3, 4, 5, 6)

	assert.Equal(t, []int{2, 4, 6}, Filter(l, func(v int) bool { return v%2 == 0 }))
	assert.Empty(t, Filter(l, func(v int) bool { return v > 10 }))
}

func TestMinBy(t *testing.T) {
	type route struct {
		id       string
		distance float64
		minutes  int
	}
	r1 := &route{id: "R1", distance: 10, minutes: 15}
	r2 := &route{id: "R2", distance: 5, minutes: 10}
	l := Of(r1, r2)

	best, ok := MinBy(l, func(r *route) float64 { return r.distance + float64(r.minutes) })
	assert.True(t, ok)
	assert.Same(t, r2, best)
}

func TestMinBy_TieKeepsFirst(t *testing.T) {
	type pair struct {
		name  string
		score float64
	}
	first := &pair{"first", 3}
	second := &pair{"second", 3}
	l := Of(&pair{"high", 9}, first, second)

	best, ok := MinBy(l, func(p *pair) float64 { return p.score })
	assert.True(t, ok)
	assert.Same(t, first, best)
}

func TestMinBy_Empty(t *testing.T) {
	_, ok := MinBy(New[int](), func(v int) float64 { return float64(v) })
	assert.False(t, ok)
}
