package domain

// Flight represents a single bookable flight leg produced by the
// availability matcher. Flights are immutable once returned to callers.
type Flight struct {
	ID           string
	Airline      string
	FlightNumber string
	Origin       string
	Destination  string
	DepartTime   string // display label, e.g. "10:30 AM"
	ArriveTime   string // display label, may carry a "+1" day marker
	Duration     string // display label, e.g. "8h 45m"
	Price        int64  // per passenger, whole currency units
	Stops        int
	Aircraft     string
	Amenities    []string
}
