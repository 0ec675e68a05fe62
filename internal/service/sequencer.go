package service

import "flydreamair/internal/domain"

// Leg identifies which direction of travel is being selected.
type Leg string

const (
	LegOutbound Leg = "outbound"
	LegReturn   Leg = "return"
)

// SelectionState reports whether a selection sequence has finished.
type SelectionState string

const (
	SelectionIncomplete SelectionState = "incomplete"
	SelectionComplete   SelectionState = "complete"
)

// SelectionStatus is the result of feeding one flight to the sequencer.
// Selection is only populated when State is SelectionComplete.
type SelectionStatus struct {
	State     SelectionState
	Selection domain.FlightSelection
}

// LegSequencer drives the one- or two-step flight selection. One-way trips
// complete on the first pick; round trips hold the outbound pick and wait
// for the return leg. A round-trip selection is only ever produced with
// both legs populated.
type LegSequencer struct {
	tripType        domain.TripType
	currentLeg      Leg
	pendingOutbound *domain.Flight
}

// NewLegSequencer creates a sequencer for the given trip type, positioned
// on the outbound leg.
func NewLegSequencer(tripType domain.TripType) *LegSequencer {
	return &LegSequencer{
		tripType:   tripType,
		currentLeg: LegOutbound,
	}
}

// CurrentLeg returns the leg awaiting a pick.
func (s *LegSequencer) CurrentLeg() Leg {
	return s.currentLeg
}

// PendingOutbound returns the held outbound pick while the return leg is
// being chosen.
func (s *LegSequencer) PendingOutbound() (domain.Flight, bool) {
	if s.pendingOutbound == nil {
		return domain.Flight{}, false
	}
	return *s.pendingOutbound, true
}

// SelectLeg records one flight pick and reports whether the selection is
// now complete. For round trips the first pick parks the outbound flight
// and advances to the return leg; the second pick combines both legs.
func (s *LegSequencer) SelectLeg(flight domain.Flight) (SelectionStatus, error) {
	if s.tripType == domain.TripTypeOneWay {
		return SelectionStatus{
			State:     SelectionComplete,
			Selection: domain.NewOneWaySelection(flight),
		}, nil
	}

	if s.currentLeg == LegOutbound {
		picked := flight
		s.pendingOutbound = &picked
		s.currentLeg = LegReturn
		return SelectionStatus{State: SelectionIncomplete}, nil
	}

	if s.pendingOutbound == nil {
		return SelectionStatus{}, ErrInvalidPhase
	}
	selection, err := domain.NewRoundTripSelection(*s.pendingOutbound, flight)
	if err != nil {
		return SelectionStatus{}, err
	}
	return SelectionStatus{
		State:     SelectionComplete,
		Selection: selection,
	}, nil
}

// ResetToOutbound discards the held outbound pick so the user can choose a
// different outbound flight. Behaves like a fresh round-trip sequence.
func (s *LegSequencer) ResetToOutbound() error {
	if s.tripType != domain.TripTypeRoundTrip {
		return ErrNotRoundTrip
	}
	s.pendingOutbound = nil
	s.currentLeg = LegOutbound
	return nil
}
