package domain

import "time"

// TripType represents the kind of journey being searched for.
type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
)

// SearchCriteria holds the parameters of a flight search. It is created by
// the search step and owned by the booking flow until the user starts a new
// search.
type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time // zero unless TripType is round-trip
	Passengers    int
	TripType      TripType
}
