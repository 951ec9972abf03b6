package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsDay(t *testing.T) {
	trip := Trip{StartDate: "2026-01-10", EndDate: "2026-01-15"}
	assert.True(t, trip.ContainsDay("2026-01-10"))
	assert.True(t, trip.ContainsDay("2026-01-12"))
	assert.True(t, trip.ContainsDay("2026-01-15"))
	assert.False(t, trip.ContainsDay("2026-01-09"))
	assert.False(t, trip.ContainsDay("2026-01-16"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("10/01/2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestSanitizedStripsHash(t *testing.T) {
	u := User{ID: "u1", PasswordHash: "secret-hash"}
	assert.Empty(t, u.Sanitized().PasswordHash)
	assert.Equal(t, "secret-hash", u.PasswordHash, "original is untouched")
}

func TestDocumentClone(t *testing.T) {
	doc := EmptyDocument()
	doc.Trips = append(doc.Trips, Trip{
		ID:           "t1",
		Destinations: []Destination{{ID: "d1", Name: "Paris"}},
	})
	clone := doc.Clone()
	clone.Trips[0].Destinations[0].Name = "Roma"
	clone.Trips = append(clone.Trips, Trip{ID: "t2"})

	assert.Equal(t, "Paris", doc.Trips[0].Destinations[0].Name)
	assert.Len(t, doc.Trips, 1)
}

func TestLegacyDestinationFieldRoundTrip(t *testing.T) {
	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","destination":"Paris"}`), &trip))
	assert.Equal(t, "Paris", trip.LegacyDestination)
	assert.Nil(t, trip.Destinations, "absence is distinguishable from an empty list")

	b, err := json.Marshal(Trip{ID: "t1"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"destination":`, "migrated trips drop the legacy field")
}
