package domain

// TripStatus represents the current status of a booked trip in the
// read-only trip directory.
type TripStatus string

const (
	TripStatusConfirmed TripStatus = "confirmed"
	TripStatusPending   TripStatus = "pending"
	TripStatusCanceled  TripStatus = "canceled"
)

// TripFlight is the flight detail attached to a directory trip record.
type TripFlight struct {
	Airline         string
	FlightNumber    string
	Origin          string
	Destination     string
	OriginCode      string
	DestinationCode string
	Date            string
	DepartureTime   string
	ArrivalTime     string
	Duration        string
}

// TripBaggage describes the baggage allowance booked with a trip.
type TripBaggage struct {
	CheckedBags int
	Weight      string
	CarryOn     string
}

// TripServices describes the ancillary services booked with a trip.
type TripServices struct {
	Baggage          TripBaggage
	Meal             string
	Insurance        bool
	PriorityBoarding bool
}

// TripPayment is the payment summary attached to a directory trip record.
type TripPayment struct {
	TicketPrice       int64
	ServiceFees       int64
	TotalPaid         int64
	OutstandingAmount int64
	Status            string
	InvoiceNumber     string
}

// TripRecord is a booked trip held by the static trip directory. Records
// are read-only; the lookup validator returns them by (reference, last name).
type TripRecord struct {
	ID            string
	PNR           string
	PassengerName string
	Flight        TripFlight
	Status        TripStatus
	Seat          string
	Services      TripServices
	Payment       TripPayment
}
