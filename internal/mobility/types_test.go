package mobility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncidentType(t *testing.T) {
	tests := map[string]IncidentType{
		"THEFT":     IncidentTheft,
		"robo":      IncidentTheft,
		"Accidente": IncidentAccident,
		" fire ":    IncidentFire,
		"INCENDIO":  IncidentFire,
		"otro":      IncidentOther,
	}
	for in, want := range tests {
		got, err := ParseIncidentType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseIncidentType("flood")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParseStatuses(t *testing.T) {
	st, err := ParseIncidentStatus("En Proceso")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, st)

	_, err = ParseIncidentStatus("done")
	assert.Error(t, err)

	ds, err := ParseDriverStatus("en ruta")
	require.NoError(t, err)
	assert.Equal(t, DriverOnRoute, ds)

	_, err = ParseDriverStatus("asleep")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestPersonVariants(t *testing.T) {
	p := NewPassenger("P1", "Ana", "1", "R1")
	assert.True(t, p.IsPassenger())
	assert.False(t, p.IsDriver())
	assert.NoError(t, p.Validate())

	d := NewDriver("D1", "Luis", "2", "car", DriverAvailable)
	assert.True(t, d.IsDriver())
	assert.False(t, d.IsPassenger())
	assert.NoError(t, d.Validate())
}

func TestPersonValidate_MismatchedVariant(t *testing.T) {
	p := &Person{ID: "X", Name: "Mixed", Kind: PersonDriver, Passenger: &PassengerInfo{}}
	assert.ErrorIs(t, p.Validate(), ErrInvalidRecord)

	q := NewDriver("D1", "Luis", "2", "", DriverAvailable)
	assert.ErrorIs(t, q.Validate(), ErrInvalidRecord)

	u := &Person{ID: "U", Name: "Unknown", Kind: "pilot"}
	assert.ErrorIs(t, u.Validate(), ErrInvalidRecord)
}

func TestComparators(t *testing.T) {
	early := &Incident{OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	late := &Incident{OccurredAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.Positive(t, IncidentsByTimeDesc(early, late))
	assert.Negative(t, IncidentsByTimeDesc(late, early))
	assert.Zero(t, IncidentsByTimeDesc(early, early))

	near := &Route{Distance: 2}
	far := &Route{Distance: 9.5}
	assert.Negative(t, RoutesByDistanceAsc(near, far))
	assert.Positive(t, RoutesByDistanceAsc(far, near))
}

func TestRouteScore(t *testing.T) {
	r := &Route{Distance: 10.5, EstimatedTime: 15}
	assert.InDelta(t, 25.5, r.Score(), 1e-9)
}

func TestNameContains(t *testing.T) {
	assert.True(t, nameContains("José Martínez", "MARTÍNEZ"))
	// Decomposed accent (e + combining acute) matches the precomposed form.
	assert.True(t, nameContains("José", "jose\u0301"))
	assert.False(t, nameContains("Pedro", "jose"))
}

func TestUUIDv7Generator(t *testing.T) {
	g := UUIDv7Generator{}
	a := g.Generate()
	b := g.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
