package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyagee/internal/model"
)

func item(id, tripID, day, timeOfDay string) model.ItineraryItem {
	return model.ItineraryItem{ID: id, TripID: tripID, DayDate: day, Time: timeOfDay, Title: id}
}

func expense(tripID, category string, brl int64) model.Expense {
	return model.Expense{
		ID: category + "-" + decimal.NewFromInt(brl).String(), TripID: tripID,
		Title: category, OriginalAmount: decimal.NewFromInt(brl), OriginalCurrency: "BRL",
		ConvertedBRL: decimal.NewFromInt(brl), Category: category,
	}
}

func TestTripItineraryOrdering(t *testing.T) {
	doc := model.Document{
		ItineraryItems: []model.ItineraryItem{
			item("d2-late", "t1", "2026-01-12", "18:00"),
			item("d1-untimed-a", "t1", "2026-01-11", ""),
			item("other-trip", "t2", "2026-01-01", "09:00"),
			item("d1-morning", "t1", "2026-01-11", "09:00"),
			item("d1-untimed-b", "t1", "2026-01-11", ""),
			item("d2-early", "t1", "2026-01-12", "08:00"),
		},
	}
	got := TripItinerary(doc, "t1")
	ids := make([]string, len(got))
	for i, it := range got {
		ids[i] = it.ID
	}
	// Days ascending; untimed before timed within a day; insertion order on ties.
	assert.Equal(t, []string{"d1-untimed-a", "d1-untimed-b", "d1-morning", "d2-early", "d2-late"}, ids)
}

func TestTripItineraryEmpty(t *testing.T) {
	assert.Empty(t, TripItinerary(model.Document{}, "t1"))
}

func TestTripExpensesInsertionOrder(t *testing.T) {
	doc := model.Document{Expenses: []model.Expense{
		expense("t1", "food", 30),
		expense("t2", "food", 99),
		expense("t1", "transport", 10),
	}}
	got := TripExpenses(doc, "t1")
	require.Len(t, got, 2)
	assert.Equal(t, "food", got[0].Category)
	assert.Equal(t, "transport", got[1].Category)
}

func TestTripTotalBRL(t *testing.T) {
	doc := model.Document{Expenses: []model.Expense{
		expense("t1", "food", 500),
		expense("t1", "transport", 50),
		expense("t2", "food", 999),
	}}
	assert.True(t, TripTotalBRL(doc, "t1").Equal(decimal.NewFromInt(550)))
	assert.True(t, TripTotalBRL(doc, "empty").IsZero())
}

func TestDateRange(t *testing.T) {
	assert.Equal(t,
		[]string{"2025-03-01", "2025-03-02", "2025-03-03"},
		DateRange("2025-03-01", "2025-03-03"))
	assert.Equal(t, []string{"2025-03-01"}, DateRange("2025-03-01", "2025-03-01"))
	assert.Nil(t, DateRange("2025-03-03", "2025-03-01"))
	assert.Nil(t, DateRange("bogus", "2025-03-01"))
}

func TestDateRangeCrossesMonth(t *testing.T) {
	got := DateRange("2026-02-27", "2026-03-02")
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, got)
}

func TestDayBuckets(t *testing.T) {
	trip := model.Trip{ID: "t1", StartDate: "2026-01-10", EndDate: "2026-01-12"}
	doc := model.Document{ItineraryItems: []model.ItineraryItem{
		item("a", "t1", "2026-01-11", "10:00"),
		item("b", "t1", "2026-01-11", "08:00"),
	}}
	buckets := DayBuckets(doc, trip)
	require.Len(t, buckets, 3)
	assert.Empty(t, buckets["2026-01-10"], "empty days still get a bucket")
	require.Len(t, buckets["2026-01-11"], 2)
	assert.Equal(t, "b", buckets["2026-01-11"][0].ID)
	assert.Empty(t, buckets["2026-01-12"])
}

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(model.DateLayout)
	}

	c := CountdownFor(day(0), day(5), now)
	assert.Equal(t, StatusInProgress, c.Status, "starting today is in progress, not upcoming")

	c = CountdownFor(day(1), day(3), now)
	assert.Equal(t, StatusUpcoming, c.Status)
	assert.Equal(t, 1, c.DaysRemaining)

	c = CountdownFor(day(-5), day(-1), now)
	assert.Equal(t, StatusPast, c.Status)

	c = CountdownFor(day(-1), day(0), now)
	assert.Equal(t, StatusInProgress, c.Status, "ending today is still in progress")

	c = CountdownFor(day(30), day(40), now)
	assert.Equal(t, 30, c.DaysRemaining)
}

func TestByCategory(t *testing.T) {
	expenses := []model.Expense{
		expense("t1", "food", 500),
		expense("t1", "transport", 50),
		expense("t1", "food", 100),
		expense("t1", "", 7),
		expense("t1", "bananas", 3),
	}
	got := ByCategory(expenses)
	require.Len(t, got, 3)
	assert.Equal(t, "food", got[0].Category)
	assert.True(t, got[0].TotalBRL.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, "transport", got[1].Category)
	assert.Equal(t, "other", got[2].Category, "unset and unknown fold into other")
	assert.True(t, got[2].TotalBRL.Equal(decimal.NewFromInt(10)))
}

func TestByCategoryEmpty(t *testing.T) {
	assert.Empty(t, ByCategory(nil))
}

func TestSortTripsForListing(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	trips := []model.Trip{
		{ID: "past-recent", StartDate: "2026-01-05", EndDate: "2026-01-07"},
		{ID: "far", StartDate: "2026-06-01", EndDate: "2026-06-10"},
		{ID: "past-old", StartDate: "2025-05-01", EndDate: "2025-05-10"},
		{ID: "today", StartDate: "2026-01-10", EndDate: "2026-01-12"},
		{ID: "soon", StartDate: "2026-02-01", EndDate: "2026-02-05"},
	}
	got := SortTripsForListing(trips, now)
	ids := make([]string, len(got))
	for i, tr := range got {
		ids[i] = tr.ID
	}
	assert.Equal(t, []string{"today", "soon", "far", "past-old", "past-recent"}, ids)
	assert.Equal(t, "past-recent", trips[0].ID, "input is not mutated")
}

func TestBudgetBurn(t *testing.T) {
	trip := model.Trip{ID: "t1", Budget: decimal.NewFromInt(1000)}
	doc := model.Document{Expenses: []model.Expense{
		expense("t1", "food", 250),
	}}
	burn := BudgetBurnFor(doc, trip)
	assert.True(t, burn.HasBudget)
	assert.True(t, burn.Spent.Equal(decimal.NewFromInt(250)))
	assert.True(t, burn.Remaining.Equal(decimal.NewFromInt(750)))
	assert.True(t, burn.PercentUsed.Equal(decimal.NewFromInt(25)))
	assert.False(t, burn.Over)
}

func TestBudgetBurnOverAndUnset(t *testing.T) {
	doc := model.Document{Expenses: []model.Expense{expense("t1", "food", 1200)}}

	over := BudgetBurnFor(doc, model.Trip{ID: "t1", Budget: decimal.NewFromInt(1000)})
	assert.True(t, over.Over)

	unset := BudgetBurnFor(doc, model.Trip{ID: "t1"})
	assert.False(t, unset.HasBudget)
	assert.True(t, unset.Spent.Equal(decimal.NewFromInt(1200)))
	assert.True(t, unset.Remaining.IsZero())
}
