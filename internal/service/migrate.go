package service

import (
	"github.com/google/uuid"

	"voyagee/internal/model"
)

// DefaultTripName labels migrated trips that carried no usable name.
const DefaultTripName = "Minha Viagem"

// MigrateDocument upgrades a loaded document to the current shape. It is a
// pure transformation and idempotent: a migrated document passes through
// unchanged.
//
// Legacy trips carried a single destination string instead of a destinations
// list. Those get exactly one synthesized destination spanning the whole
// trip, and the trip name falls back to that string. A missing budget
// normalizes to zero (the decimal zero value already covers that), and nil
// top-level slices normalize to empty ones.
func MigrateDocument(doc model.Document) model.Document {
	out := doc
	out.Trips = make([]model.Trip, len(doc.Trips))
	for i, t := range doc.Trips {
		if t.Destinations == nil {
			// The legacy destination string wins over any stored name.
			if t.LegacyDestination != "" {
				t.Name = t.LegacyDestination
			}
			if t.Name == "" {
				t.Name = DefaultTripName
			}
			t.Destinations = []model.Destination{}
			if t.LegacyDestination != "" {
				t.Destinations = append(t.Destinations, model.Destination{
					ID:            uuid.NewString(),
					Name:          t.LegacyDestination,
					ArrivalDate:   t.StartDate,
					DepartureDate: t.EndDate,
				})
			}
		}
		t.LegacyDestination = ""
		out.Trips[i] = t
	}
	if out.ItineraryItems == nil {
		out.ItineraryItems = []model.ItineraryItem{}
	}
	if out.Expenses == nil {
		out.Expenses = []model.Expense{}
	}
	return out
}
