package model

// ItineraryItem is a scheduled activity on a specific day of a trip.
// Time is optional 24h "HH:MM"; Lat/Lng are set only when the location was
// picked on a map. Destination references a Destination by name, not id;
// kept that way for compatibility with existing documents.
type ItineraryItem struct {
	ID          string   `json:"id"`
	TripID      string   `json:"trip_id"`
	DayDate     string   `json:"day_date"`
	Time        string   `json:"time,omitempty"`
	Title       string   `json:"title"`
	Location    string   `json:"location,omitempty"`
	PlaceName   string   `json:"place_name,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Description string   `json:"description,omitempty"`
	Destination string   `json:"destination,omitempty"`
}
