// Package query holds the pure read views over a trip-data document
// snapshot. Nothing here mutates the document or touches storage, so every
// function is safe to call repeatedly and recomputes on demand.
package query

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"voyagee/internal/model"
)

// TripItinerary returns the trip's itinerary items sorted by day then time.
// Untimed items sort before timed ones on the same day; ties keep insertion
// order.
func TripItinerary(doc model.Document, tripID string) []model.ItineraryItem {
	items := []model.ItineraryItem{}
	for _, it := range doc.ItineraryItems {
		if it.TripID == tripID {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DayDate != items[j].DayDate {
			return items[i].DayDate < items[j].DayDate
		}
		return items[i].Time < items[j].Time
	})
	return items
}

// TripExpenses returns the trip's expenses in insertion order.
func TripExpenses(doc model.Document, tripID string) []model.Expense {
	expenses := []model.Expense{}
	for _, e := range doc.Expenses {
		if e.TripID == tripID {
			expenses = append(expenses, e)
		}
	}
	return expenses
}

// TripTotalBRL sums the canonical BRL amount over the trip's expenses.
func TripTotalBRL(doc model.Document, tripID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range doc.Expenses {
		if e.TripID == tripID {
			total = total.Add(e.ConvertedBRL)
		}
	}
	return total
}

// DateRange returns every calendar date from start to end inclusive,
// ascending. An invalid or inverted range yields nil.
func DateRange(startDate, endDate string) []string {
	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return nil
	}
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(model.DateLayout))
	}
	return dates
}

// DayBuckets groups a trip's itinerary per calendar day of the trip span,
// one bucket per day even when empty. Items within a bucket keep the
// TripItinerary order.
func DayBuckets(doc model.Document, trip model.Trip) map[string][]model.ItineraryItem {
	buckets := map[string][]model.ItineraryItem{}
	for _, day := range DateRange(trip.StartDate, trip.EndDate) {
		buckets[day] = []model.ItineraryItem{}
	}
	for _, it := range TripItinerary(doc, trip.ID) {
		buckets[it.DayDate] = append(buckets[it.DayDate], it)
	}
	return buckets
}

// TripStatus classifies a trip relative to a point in time.
type TripStatus string

const (
	StatusPast       TripStatus = "past"
	StatusInProgress TripStatus = "in_progress"
	StatusUpcoming   TripStatus = "upcoming"
)

// Countdown is the derived status and day count for a trip.
type Countdown struct {
	Status        TripStatus
	DaysRemaining int
}

// CountdownFor classifies the span against now, ignoring time of day. A trip
// starting today is already in progress. DaysRemaining is only meaningful
// for upcoming trips.
func CountdownFor(startDate, endDate string, now time.Time) Countdown {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start, err := model.ParseDate(startDate)
	if err != nil {
		return Countdown{Status: StatusUpcoming}
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return Countdown{Status: StatusUpcoming}
	}
	switch {
	case today.After(end):
		return Countdown{Status: StatusPast}
	case !today.Before(start):
		return Countdown{Status: StatusInProgress}
	}
	days := int((start.Sub(today) + 24*time.Hour - 1) / (24 * time.Hour))
	return Countdown{Status: StatusUpcoming, DaysRemaining: days}
}

// CategoryTotal is a per-category sum of canonical BRL amounts.
type CategoryTotal struct {
	Category string
	TotalBRL decimal.Decimal
}

// ByCategory groups expenses by category, folding unknown or unset
// categories into "other". Results are sorted by total descending, category
// name ascending on ties, for chart and legend views.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	sums := map[string]decimal.Decimal{}
	for _, e := range expenses {
		cat := model.NormalizeCategory(e.Category)
		sums[cat] = sums[cat].Add(e.ConvertedBRL)
	}
	totals := make([]CategoryTotal, 0, len(sums))
	for cat, sum := range sums {
		totals = append(totals, CategoryTotal{Category: cat, TotalBRL: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].TotalBRL.Equal(totals[j].TotalBRL) {
			return totals[i].TotalBRL.GreaterThan(totals[j].TotalBRL)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// SortTripsForListing orders trips for the home listing: trips starting
// today or later first, then past ones, each partition by start date
// ascending. The input is left untouched.
func SortTripsForListing(trips []model.Trip, now time.Time) []model.Trip {
	today := model.Today(now)
	sorted := append([]model.Trip(nil), trips...)
	sort.SliceStable(sorted, func(i, j int) bool {
		iF := sorted[i].StartDate >= today
		jF := sorted[j].StartDate >= today
		if iF != jF {
			return iF
		}
		return sorted[i].StartDate < sorted[j].StartDate
	})
	return sorted
}

// BudgetBurn is the spend-versus-budget summary for a trip.
type BudgetBurn struct {
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
	Over        bool
	HasBudget   bool // false when the budget is unset (zero)
}

// BudgetBurnFor computes the burn summary. A zero budget means "no budget
// set": spent still accumulates but remaining, percent and the over flag
// stay zero-valued.
func BudgetBurnFor(doc model.Document, trip model.Trip) BudgetBurn {
	spent := TripTotalBRL(doc, trip.ID)
	burn := BudgetBurn{Budget: trip.Budget, Spent: spent}
	if trip.Budget.IsZero() {
		return burn
	}
	burn.HasBudget = true
	burn.Remaining = trip.Budget.Sub(spent)
	burn.PercentUsed = spent.Div(trip.Budget).Mul(decimal.NewFromInt(100)).Round(1)
	burn.Over = spent.GreaterThan(trip.Budget)
	return burn
}
