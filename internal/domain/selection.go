package domain

import "errors"

// ErrMismatchedLegs is returned when a round-trip selection's legs do not
// mirror each other's route.
var ErrMismatchedLegs = errors.New("return leg does not mirror outbound route")

// SelectionKind discriminates one-way and round-trip selections.
type SelectionKind string

const (
	SelectionOneWay    SelectionKind = "one-way"
	SelectionRoundTrip SelectionKind = "round-trip"
)

// FlightSelection is the flight (or pair of flights) a user picked from the
// results. For round trips both legs are always populated.
type FlightSelection struct {
	Kind     SelectionKind
	Outbound Flight
	Return   Flight // zero value unless Kind is SelectionRoundTrip
}

// NewOneWaySelection builds a completed one-way selection.
func NewOneWaySelection(flight Flight) FlightSelection {
	return FlightSelection{
		Kind:     SelectionOneWay,
		Outbound: flight,
	}
}

// NewRoundTripSelection builds a completed round-trip selection. The return
// leg must fly the outbound route in reverse.
func NewRoundTripSelection(outbound, returnLeg Flight) (FlightSelection, error) {
	if outbound.Destination != returnLeg.Origin || outbound.Origin != returnLeg.Destination {
		return FlightSelection{}, ErrMismatchedLegs
	}
	return FlightSelection{
		Kind:     SelectionRoundTrip,
		Outbound: outbound,
		Return:   returnLeg,
	}, nil
}

// Legs returns the selected flights in travel order.
func (s FlightSelection) Legs() []Flight {
	if s.Kind == SelectionRoundTrip {
		return []Flight{s.Outbound, s.Return}
	}
	return []Flight{s.Outbound}
}
