package model

// Document is one user's full data set. It is persisted as a single JSON
// value and always written whole; there is no partial-write state.
type Document struct {
	Trips          []Trip          `json:"trips"`
	ItineraryItems []ItineraryItem `json:"itineraryItems"`
	Expenses       []Expense       `json:"expenses"`
}

// EmptyDocument returns a fresh document with non-nil slices.
func EmptyDocument() Document {
	return Document{
		Trips:          []Trip{},
		ItineraryItems: []ItineraryItem{},
		Expenses:       []Expense{},
	}
}

// Clone returns a deep-enough copy of the document: slices are copied so the
// clone can be mutated and persisted without touching the original. Element
// values are copied by assignment; embedded destination slices are duplicated
// as well since trips are edited in place.
func (d Document) Clone() Document {
	out := Document{
		Trips:          make([]Trip, len(d.Trips)),
		ItineraryItems: make([]ItineraryItem, len(d.ItineraryItems)),
		Expenses:       make([]Expense, len(d.Expenses)),
	}
	copy(out.ItineraryItems, d.ItineraryItems)
	copy(out.Expenses, d.Expenses)
	for i, t := range d.Trips {
		t.Destinations = append([]Destination(nil), t.Destinations...)
		out.Trips[i] = t
	}
	return out
}
