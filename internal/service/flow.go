package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"flydreamair/internal/domain"
)

// Page identifies which navigation area the user is on. MyTrips and Help
// sit outside the linear booking sequence and never touch its data.
type Page string

const (
	PageFlights Page = "flights"
	PageMyTrips Page = "mytrips"
	PageHelp    Page = "help"
)

// journeyState is the tagged union of booking-flow phases. Each variant
// carries exactly the data that is legal for its phase, so a later phase
// can never be reached with upstream data missing.
type journeyState interface {
	phase() domain.Phase
}

type searchState struct{}

type resultsState struct {
	criteria  domain.SearchCriteria
	sequencer *LegSequencer
}

type bookingState struct {
	criteria  domain.SearchCriteria
	selection domain.FlightSelection
}

type confirmationState struct {
	criteria  domain.SearchCriteria
	selection domain.FlightSelection
	record    domain.BookingRecord
}

func (searchState) phase() domain.Phase       { return domain.PhaseSearch }
func (resultsState) phase() domain.Phase      { return domain.PhaseResults }
func (bookingState) phase() domain.Phase      { return domain.PhaseBooking }
func (confirmationState) phase() domain.Phase { return domain.PhaseConfirmation }

// Flow is the booking-flow state machine for one session. All flow data is
// owned exclusively by the Flow and replaced wholesale on each transition.
// Operations are serialized by the flow's own mutex; a guard failure leaves
// the flow exactly where it was.
type Flow struct {
	mu      sync.Mutex
	page    Page
	journey journeyState
}

// NewFlow creates a flow in the Search phase.
func NewFlow() *Flow {
	return &Flow{
		page:    PageFlights,
		journey: searchState{},
	}
}

// Phase returns the currently visible phase. The MyTrips and Help pages
// shadow the journey phase without disturbing its data.
func (f *Flow) Phase() domain.Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phaseLocked()
}

func (f *Flow) phaseLocked() domain.Phase {
	switch f.page {
	case PageMyTrips:
		return domain.PhaseMyTrips
	case PageHelp:
		return domain.PhaseHelp
	default:
		return f.journey.phase()
	}
}

// SubmitSearch validates the criteria and moves Search to Results. Invalid
// criteria refuse the transition and leave the flow on Search.
func (f *Flow) SubmitSearch(criteria domain.SearchCriteria) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.page != PageFlights || f.journey.phase() != domain.PhaseSearch {
		return ErrInvalidPhase
	}
	if err := ValidateCriteria(criteria); err != nil {
		return err
	}

	f.journey = resultsState{
		criteria:  criteria,
		sequencer: NewLegSequencer(criteria.TripType),
	}
	return nil
}

// ActiveQuery returns the matcher query for the leg currently being
// selected. The return leg always uses the reversed route and the search's
// return date.
func (f *Flow) ActiveQuery() (origin, destination string, date time.Time, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rs, isResults := f.journey.(resultsState)
	if !isResults {
		return "", "", time.Time{}, false
	}
	if rs.sequencer.CurrentLeg() == LegReturn {
		return rs.criteria.Destination, rs.criteria.Origin, rs.criteria.ReturnDate, true
	}
	return rs.criteria.Origin, rs.criteria.Destination, rs.criteria.DepartureDate, true
}

// SelectFlight feeds one pick to the sequencer. A complete selection moves
// the flow to Booking; an incomplete one stays on Results awaiting the
// return leg.
func (f *Flow) SelectFlight(flight domain.Flight) (SelectionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rs, isResults := f.journey.(resultsState)
	if f.page != PageFlights || !isResults {
		return SelectionStatus{}, ErrInvalidPhase
	}

	status, err := rs.sequencer.SelectLeg(flight)
	if err != nil {
		return SelectionStatus{}, err
	}
	if status.State == SelectionComplete {
		f.journey = bookingState{
			criteria:  rs.criteria,
			selection: status.Selection,
		}
	}
	return status, nil
}

// ResetToOutbound discards a held outbound pick so the user can change it.
func (f *Flow) ResetToOutbound() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rs, isResults := f.journey.(resultsState)
	if f.page != PageFlights || !isResults {
		return ErrInvalidPhase
	}
	return rs.sequencer.ResetToOutbound()
}

// SubmitBooking captures passenger and payment details and moves Booking to
// Confirmation. The record is priced by the shared fare calculator and is
// immutable once created.
func (f *Flow) SubmitBooking(passenger domain.PassengerInfo, payment domain.PaymentInfo, termsAccepted bool) (domain.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bs, isBooking := f.journey.(bookingState)
	if f.page != PageFlights || !isBooking {
		return domain.BookingRecord{}, ErrInvalidPhase
	}
	if !termsAccepted {
		return domain.BookingRecord{}, ErrTermsNotAccepted
	}
	if err := validateBookingFields(passenger, payment); err != nil {
		return domain.BookingRecord{}, err
	}

	record := domain.BookingRecord{
		Reference: newBookingReference(),
		Selection: bs.selection,
		Passenger: passenger,
		Payment:   payment,
		Criteria:  bs.criteria,
		Fare:      ComputeFare(bs.selection, bs.criteria.Passengers),
		CreatedAt: time.Now(),
	}
	f.journey = confirmationState{
		criteria:  bs.criteria,
		selection: bs.selection,
		record:    record,
	}
	return record, nil
}

// Back applies the phase-appropriate backward transition: Booking returns
// to Results with the selection discarded, Results returns to Search.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.page != PageFlights {
		return ErrInvalidPhase
	}
	switch js := f.journey.(type) {
	case bookingState:
		f.journey = resultsState{
			criteria:  js.criteria,
			sequencer: NewLegSequencer(js.criteria.TripType),
		}
		return nil
	case resultsState:
		f.journey = searchState{}
		return nil
	default:
		return ErrInvalidPhase
	}
}

// StartNewSearch discards all accumulated data and returns to Search. It is
// valid from every phase; the flow is cyclic.
func (f *Flow) StartNewSearch() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.page = PageFlights
	f.journey = searchState{}
}

// NavigateTo switches between the flights area and the MyTrips/Help pages
// without changing any journey data.
func (f *Flow) NavigateTo(page Page) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.page = page
}

// FlowSnapshot is a read-only view of the flow, exposing only the data
// legal for the current phase.
type FlowSnapshot struct {
	Phase           domain.Phase
	Criteria        *domain.SearchCriteria
	CurrentLeg      Leg
	PendingOutbound *domain.Flight
	Selection       *domain.FlightSelection
	Record          *domain.BookingRecord
	Fare            *domain.FareBreakdown
}

// Snapshot captures the current phase and its data for rendering.
func (f *Flow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := FlowSnapshot{Phase: f.phaseLocked()}
	switch js := f.journey.(type) {
	case resultsState:
		snap.Criteria = &js.criteria
		snap.CurrentLeg = js.sequencer.CurrentLeg()
		if pending, ok := js.sequencer.PendingOutbound(); ok {
			snap.PendingOutbound = &pending
		}
	case bookingState:
		snap.Criteria = &js.criteria
		snap.Selection = &js.selection
		fare := ComputeFare(js.selection, js.criteria.Passengers)
		snap.Fare = &fare
	case confirmationState:
		snap.Criteria = &js.criteria
		snap.Selection = &js.selection
		snap.Record = &js.record
		fare := ComputeFare(js.selection, js.criteria.Passengers)
		snap.Fare = &fare
	}
	return snap
}

// Fare prices the current selection with the shared calculator. Only the
// Booking and Confirmation phases carry a selection.
func (f *Flow) Fare() (domain.FareBreakdown, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch js := f.journey.(type) {
	case bookingState:
		return ComputeFare(js.selection, js.criteria.Passengers), nil
	case confirmationState:
		return js.record.Fare, nil
	default:
		return domain.FareBreakdown{}, ErrNoSelection
	}
}

// ValidateCriteria checks the well-formedness invariants of a search:
// route and departure date present, positive passenger count, and a return
// date that exists and does not precede departure for round trips.
func ValidateCriteria(c domain.SearchCriteria) error {
	if strings.TrimSpace(c.Origin) == "" {
		return ErrMissingOrigin
	}
	if strings.TrimSpace(c.Destination) == "" {
		return ErrMissingDestination
	}
	if c.DepartureDate.IsZero() {
		return ErrMissingDepartureDate
	}
	if c.Passengers <= 0 {
		return ErrInvalidPassengerCount
	}
	switch c.TripType {
	case domain.TripTypeOneWay:
	case domain.TripTypeRoundTrip:
		if c.ReturnDate.IsZero() {
			return ErrMissingReturnDate
		}
		if c.ReturnDate.Before(c.DepartureDate) {
			return ErrReturnBeforeDeparture
		}
	default:
		return ErrInvalidTripType
	}
	return nil
}

// ParseTripType validates a trip type string from the transport layer.
// An empty value defaults to round-trip, matching the search form.
func ParseTripType(value string) (domain.TripType, error) {
	switch domain.TripType(value) {
	case domain.TripTypeOneWay:
		return domain.TripTypeOneWay, nil
	case domain.TripTypeRoundTrip, "":
		return domain.TripTypeRoundTrip, nil
	default:
		return "", ErrInvalidTripType
	}
}

// validateBookingFields requires every passenger and payment field to be
// non-empty before a record can be created.
func validateBookingFields(p domain.PassengerInfo, pay domain.PaymentInfo) error {
	required := []string{
		p.FirstName, p.LastName, p.Email, p.Phone, p.DateOfBirth, p.Gender,
		pay.CardNumber, pay.ExpiryDate, pay.CVV, pay.NameOnCard,
		pay.BillingAddress, pay.City, pay.ZipCode,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteBookingFields
		}
	}
	return nil
}

// newBookingReference generates a reference like "SB7F3A1C9D2".
func newBookingReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SB" + raw[:9]
}
