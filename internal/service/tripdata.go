package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"voyagee/internal/apperr"
	"voyagee/internal/model"
	"voyagee/internal/repo"
)

const dataKeyPrefix = "voyagee-data-"

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TripData owns one user's trips, itinerary items and expenses. It has two
// states: empty (no session) and loaded. Every mutation builds the next
// document, persists it whole, and only then swaps it in; a failed persist
// leaves the in-memory state exactly where it was.
type TripData struct {
	kv     repo.KV
	log    *zap.SugaredLogger
	userID string // "" while empty
	doc    model.Document
}

// NewTripData builds an empty store over the given persistence port.
func NewTripData(kv repo.KV, log *zap.SugaredLogger) *TripData {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &TripData{kv: kv, log: log, doc: model.EmptyDocument()}
}

func dataKey(userID string) string { return dataKeyPrefix + userID }

// SetUser loads (and migrates, if needed) the document of the given user and
// transitions the store to loaded.
func (s *TripData) SetUser(userID string) error {
	if userID == "" {
		return apperr.ValidationFailed("user id is required", "")
	}
	b, err := s.kv.Get(dataKey(userID))
	if errors.Is(err, repo.ErrKeyNotFound) {
		s.userID = userID
		s.doc = model.EmptyDocument()
		return nil
	}
	if err != nil {
		return apperr.Wrap(err, apperr.Persistence, "reading trip data failed")
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return apperr.Wrap(err, apperr.Persistence, "trip data is corrupt")
	}
	s.userID = userID
	s.doc = MigrateDocument(doc)
	return nil
}

// ClearUser transitions the store back to empty without touching any
// persisted document.
func (s *TripData) ClearUser() {
	s.userID = ""
	s.doc = model.EmptyDocument()
}

// Loaded reports whether a user's document is currently loaded.
func (s *TripData) Loaded() bool { return s.userID != "" }

// Snapshot returns a copy of the current document for read-only consumers.
// An empty store yields an empty document.
func (s *TripData) Snapshot() model.Document { return s.doc.Clone() }

// persist writes next for the current user and commits it in memory only on
// success.
func (s *TripData) persist(next model.Document) error {
	if s.userID == "" {
		return apperr.SessionRequired()
	}
	b, err := json.Marshal(next)
	if err != nil {
		return apperr.PersistenceFailed(err)
	}
	if err := s.kv.Set(dataKey(s.userID), b); err != nil {
		return apperr.PersistenceFailed(err)
	}
	s.doc = next
	return nil
}

func validateSpan(start, end string) error {
	if _, err := model.ParseDate(start); err != nil {
		return apperr.ValidationFailed("invalid start date", start)
	}
	if _, err := model.ParseDate(end); err != nil {
		return apperr.ValidationFailed("invalid end date", end)
	}
	if end < start {
		return apperr.ValidationFailed("end date before start date", start+".."+end)
	}
	return nil
}

// AddTrip creates a trip. Budget starts at zero and notes empty; provided
// destinations get ids assigned when missing.
func (s *TripData) AddTrip(name, startDate, endDate string, destinations []model.Destination) (model.Trip, error) {
	if s.userID == "" {
		return model.Trip{}, apperr.SessionRequired()
	}
	if strings.TrimSpace(name) == "" {
		return model.Trip{}, apperr.ValidationFailed("trip name is required", "")
	}
	if err := validateSpan(startDate, endDate); err != nil {
		return model.Trip{}, err
	}
	trip := model.Trip{
		ID:           uuid.NewString(),
		Name:         name,
		StartDate:    startDate,
		EndDate:      endDate,
		Destinations: []model.Destination{},
		Budget:       decimal.Zero,
	}
	for _, d := range destinations {
		if err := validateDestination(trip, d.Name, d.ArrivalDate, d.DepartureDate); err != nil {
			return model.Trip{}, err
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		trip.Destinations = append(trip.Destinations, d)
	}
	next := s.doc.Clone()
	next.Trips = append(next.Trips, trip)
	if err := s.persist(next); err != nil {
		return model.Trip{}, err
	}
	s.log.Infow("trip created", "trip_id", trip.ID, "name", trip.Name)
	return trip, nil
}

// TripUpdate carries the optional trip fields; nil means unchanged.
type TripUpdate struct {
	Name           *string
	StartDate      *string
	EndDate        *string
	Budget         *decimal.Decimal
	EssentialNotes *string
}

// UpdateTrip shallow-merges the update into the trip. Unknown ids surface
// NotFound.
func (s *TripData) UpdateTrip(tripID string, upd TripUpdate) error {
	idx := s.tripIndex(tripID)
	if idx == -1 {
		return apperr.NotFound("trip", tripID)
	}
	next := s.doc.Clone()
	t := next.Trips[idx]
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return apperr.ValidationFailed("trip name is required", "")
		}
		t.Name = *upd.Name
	}
	if upd.StartDate != nil {
		t.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		t.EndDate = *upd.EndDate
	}
	if upd.StartDate != nil || upd.EndDate != nil {
		if err := validateSpan(t.StartDate, t.EndDate); err != nil {
			return err
		}
	}
	if upd.Budget != nil {
		if upd.Budget.IsNegative() {
			return apperr.ValidationFailed("budget cannot be negative", upd.Budget.String())
		}
		t.Budget = *upd.Budget
	}
	if upd.EssentialNotes != nil {
		t.EssentialNotes = *upd.EssentialNotes
	}
	next.Trips[idx] = t
	return s.persist(next)
}

// DeleteTrip removes the trip and every itinerary item and expense that
// references it, in one persisted write.
func (s *TripData) DeleteTrip(tripID string) error {
	if s.tripIndex(tripID) == -1 {
		return apperr.NotFound("trip", tripID)
	}
	next := s.doc.Clone()
	trips := next.Trips[:0]
	for _, t := range next.Trips {
		if t.ID != tripID {
			trips = append(trips, t)
		}
	}
	next.Trips = trips
	items := next.ItineraryItems[:0]
	for _, it := range next.ItineraryItems {
		if it.TripID != tripID {
			items = append(items, it)
		}
	}
	next.ItineraryItems = items
	expenses := next.Expenses[:0]
	for _, e := range next.Expenses {
		if e.TripID != tripID {
			expenses = append(expenses, e)
		}
	}
	next.Expenses = expenses
	if err := s.persist(next); err != nil {
		return err
	}
	s.log.Infow("trip deleted", "trip_id", tripID)
	return nil
}

// GetTrip returns the trip or NotFound.
func (s *TripData) GetTrip(tripID string) (model.Trip, error) {
	idx := s.tripIndex(tripID)
	if idx == -1 {
		return model.Trip{}, apperr.NotFound("trip", tripID)
	}
	t := s.doc.Trips[idx]
	t.Destinations = append([]model.Destination(nil), t.Destinations...)
	return t, nil
}

// Trips returns all trips in insertion order.
func (s *TripData) Trips() []model.Trip {
	return s.Snapshot().Trips
}

func (s *TripData) tripIndex(tripID string) int {
	for i, t := range s.doc.Trips {
		if t.ID == tripID {
			return i
		}
	}
	return -1
}

func validateDestination(t model.Trip, name, arrival, departure string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.ValidationFailed("destination name is required", "")
	}
	if err := validateSpan(arrival, departure); err != nil {
		return err
	}
	if !t.ContainsDay(arrival) || !t.ContainsDay(departure) {
		return apperr.ValidationFailed("destination dates outside trip span", arrival+".."+departure)
	}
	return nil
}

// AddDestination appends a destination to the trip's embedded list.
func (s *TripData) AddDestination(tripID, name, arrivalDate, departureDate string) (model.Destination, error) {
	idx := s.tripIndex(tripID)
	if idx == -1 {
		return model.Destination{}, apperr.NotFound("trip", tripID)
	}
	if err := validateDestination(s.doc.Trips[idx], name, arrivalDate, departureDate); err != nil {
		return model.Destination{}, err
	}
	dest := model.Destination{
		ID:            uuid.NewString(),
		Name:          name,
		ArrivalDate:   arrivalDate,
		DepartureDate: departureDate,
	}
	next := s.doc.Clone()
	next.Trips[idx].Destinations = append(next.Trips[idx].Destinations, dest)
	if err := s.persist(next); err != nil {
		return model.Destination{}, err
	}
	return dest, nil
}

// RemoveDestination removes a destination from the trip's embedded list.
func (s *TripData) RemoveDestination(tripID, destID string) error {
	idx := s.tripIndex(tripID)
	if idx == -1 {
		return apperr.NotFound("trip", tripID)
	}
	next := s.doc.Clone()
	dests := next.Trips[idx].Destinations
	kept := dests[:0]
	for _, d := range dests {
		if d.ID != destID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(dests) {
		return apperr.NotFound("destination", destID)
	}
	next.Trips[idx].Destinations = kept
	return s.persist(next)
}

// ItineraryItemInput is the creation payload for an itinerary item.
type ItineraryItemInput struct {
	TripID      string
	DayDate     string
	Time        string
	Title       string
	Location    string
	PlaceName   string
	Lat         *float64
	Lng         *float64
	Description string
	Destination string
}

func validateItineraryFields(t model.Trip, dayDate, timeOfDay, title string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.ValidationFailed("title is required", "")
	}
	if _, err := model.ParseDate(dayDate); err != nil {
		return apperr.ValidationFailed("invalid day date", dayDate)
	}
	if !t.ContainsDay(dayDate) {
		return apperr.ValidationFailed("day outside trip span", dayDate)
	}
	if timeOfDay != "" && !timeRe.MatchString(timeOfDay) {
		return apperr.ValidationFailed("time must be HH:MM", timeOfDay)
	}
	return nil
}

// AddItineraryItem creates an itinerary item. The referenced trip must exist
// and the day must fall within its span.
func (s *TripData) AddItineraryItem(in ItineraryItemInput) (model.ItineraryItem, error) {
	idx := s.tripIndex(in.TripID)
	if idx == -1 {
		return model.ItineraryItem{}, apperr.NotFound("trip", in.TripID)
	}
	if err := validateItineraryFields(s.doc.Trips[idx], in.DayDate, in.Time, in.Title); err != nil {
		return model.ItineraryItem{}, err
	}
	item := model.ItineraryItem{
		ID:          uuid.NewString(),
		TripID:      in.TripID,
		DayDate:     in.DayDate,
		Time:        in.Time,
		Title:       in.Title,
		Location:    in.Location,
		PlaceName:   in.PlaceName,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Description: in.Description,
		Destination: in.Destination,
	}
	next := s.doc.Clone()
	next.ItineraryItems = append(next.ItineraryItems, item)
	if err := s.persist(next); err != nil {
		return model.ItineraryItem{}, err
	}
	return item, nil
}

// ItineraryItemUpdate carries the optional item fields; nil means unchanged.
// Items cannot move between trips.
type ItineraryItemUpdate struct {
	DayDate     *string
	Time        *string
	Title       *string
	Location    *string
	PlaceName   *string
	Lat         *float64
	Lng         *float64
	Description *string
	Destination *string
}

// UpdateItineraryItem shallow-merges the update into the item.
func (s *TripData) UpdateItineraryItem(itemID string, upd ItineraryItemUpdate) error {
	idx := -1
	for i, it := range s.doc.ItineraryItems {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperr.NotFound("itinerary item", itemID)
	}
	next := s.doc.Clone()
	it := next.ItineraryItems[idx]
	if upd.DayDate != nil {
		it.DayDate = *upd.DayDate
	}
	if upd.Time != nil {
		it.Time = *upd.Time
	}
	if upd.Title != nil {
		it.Title = *upd.Title
	}
	tripIdx := s.tripIndex(it.TripID)
	if tripIdx == -1 {
		return apperr.NotFound("trip", it.TripID)
	}
	if err := validateItineraryFields(s.doc.Trips[tripIdx], it.DayDate, it.Time, it.Title); err != nil {
		return err
	}
	if upd.Location != nil {
		it.Location = *upd.Location
	}
	if upd.PlaceName != nil {
		it.PlaceName = *upd.PlaceName
	}
	if upd.Lat != nil {
		it.Lat = upd.Lat
	}
	if upd.Lng != nil {
		it.Lng = upd.Lng
	}
	if upd.Description != nil {
		it.Description = *upd.Description
	}
	if upd.Destination != nil {
		it.Destination = *upd.Destination
	}
	next.ItineraryItems[idx] = it
	return s.persist(next)
}

// DeleteItineraryItem removes the item.
func (s *TripData) DeleteItineraryItem(itemID string) error {
	next := s.doc.Clone()
	kept := next.ItineraryItems[:0]
	for _, it := range next.ItineraryItems {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(next.ItineraryItems) {
		return apperr.NotFound("itinerary item", itemID)
	}
	next.ItineraryItems = kept
	return s.persist(next)
}

// ExpenseInput is the creation payload for an expense. ConvertedBRL is the
// canonical aggregation amount and must be supplied by the caller, computed
// from the original amount and a confirmed exchange rate.
type ExpenseInput struct {
	TripID           string
	Title            string
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	ConvertedBRL     decimal.Decimal
	Category         string
}

// AddExpense creates an expense. Expenses are immutable afterwards; correct
// by delete and recreate.
func (s *TripData) AddExpense(in ExpenseInput) (model.Expense, error) {
	if s.tripIndex(in.TripID) == -1 {
		return model.Expense{}, apperr.NotFound("trip", in.TripID)
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Expense{}, apperr.ValidationFailed("title is required", "")
	}
	if in.OriginalAmount.IsNegative() || in.ConvertedBRL.IsNegative() {
		return model.Expense{}, apperr.ValidationFailed("amounts cannot be negative", "")
	}
	if !model.ValidCurrency(in.OriginalCurrency) {
		return model.Expense{}, apperr.ValidationFailed("unknown currency code", in.OriginalCurrency)
	}
	exp := model.Expense{
		ID:               uuid.NewString(),
		TripID:           in.TripID,
		Title:            in.Title,
		OriginalAmount:   in.OriginalAmount,
		OriginalCurrency: in.OriginalCurrency,
		ConvertedBRL:     in.ConvertedBRL,
		Category:         model.NormalizeCategory(in.Category),
	}
	next := s.doc.Clone()
	next.Expenses = append(next.Expenses, exp)
	if err := s.persist(next); err != nil {
		return model.Expense{}, err
	}
	return exp, nil
}

// DeleteExpense removes the expense.
func (s *TripData) DeleteExpense(expenseID string) error {
	next := s.doc.Clone()
	kept := next.Expenses[:0]
	for _, e := range next.Expenses {
		if e.ID != expenseID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(next.Expenses) {
		return apperr.NotFound("expense", expenseID)
	}
	next.Expenses = kept
	return s.persist(next)
}
