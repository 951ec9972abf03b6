package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire format used throughout the data set.
// Dates are stored as plain strings so that lexicographic order equals
// chronological order.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns now truncated to midnight in DateLayout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Destination is a place-and-date-range sub-entry embedded in a Trip.
type Destination struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
}

// Trip is the top-level planning unit. The owner is implicit: a trip lives
// inside exactly one user's document.
//
// LegacyDestination carries the pre-migration singular destination field; it
// is consumed by migration and empty on any migrated document.
type Trip struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	Destinations      []Destination   `json:"destinations"`
	Budget            decimal.Decimal `json:"budget"`
	EssentialNotes    string          `json:"essential_notes"`
	LegacyDestination string          `json:"destination,omitempty"`
}

// ContainsDay reports whether day falls within the trip's date span,
// boundaries included. Dates compare lexicographically.
func (t Trip) ContainsDay(day string) bool {
	return day >= t.StartDate && day <= t.EndDate
}
