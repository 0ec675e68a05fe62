package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"flydreamair/internal/domain"
)

// FlightSource answers availability queries. The fixture-backed matcher is
// the only implementation today; a live inventory source can replace it
// without touching the flow or the sequencer.
type FlightSource interface {
	Match(origin, destination string, date time.Time) []domain.Flight
}

// ResultsCache caches availability results per route and date. A nil cache
// disables caching; the source stays authoritative either way.
type ResultsCache interface {
	GetResults(ctx context.Context, origin, destination string, date time.Time) ([]domain.Flight, error)
	SetResults(ctx context.Context, origin, destination string, date time.Time, flights []domain.Flight) error
}

// LegResults is the availability listing for the leg currently awaiting a
// pick. An empty Flights slice is a valid answer, not an error.
type LegResults struct {
	Leg         Leg
	Origin      string
	Destination string
	Date        time.Time
	Flights     []domain.Flight
}

// SessionService owns every active booking flow, keyed by session ID. Each
// session is an independent state machine; the service adds availability
// lookup (with optional caching) on top of the flow's transitions.
type SessionService struct {
	mu     sync.RWMutex
	flows  map[string]*Flow
	source FlightSource
	cache  ResultsCache
}

// NewSessionService creates a SessionService. cache may be nil.
func NewSessionService(source FlightSource, cache ResultsCache) *SessionService {
	return &SessionService{
		flows:  make(map[string]*Flow),
		source: source,
		cache:  cache,
	}
}

// CreateSession starts a fresh flow and returns its session ID.
func (s *SessionService) CreateSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.flows[id] = NewFlow()
	s.mu.Unlock()
	return id
}

// Flow returns the flow for a session.
func (s *SessionService) Flow(sessionID string) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flow, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return flow, nil
}

// Snapshot returns the rendered view of a session's flow.
func (s *SessionService) Snapshot(sessionID string) (FlowSnapshot, error) {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return FlowSnapshot{}, err
	}
	return flow.Snapshot(), nil
}

// SubmitSearch runs the Search→Results transition and returns the outbound
// leg's availability.
func (s *SessionService) SubmitSearch(ctx context.Context, sessionID string, criteria domain.SearchCriteria) (*LegResults, error) {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return nil, err
	}
	if err := flow.SubmitSearch(criteria); err != nil {
		return nil, err
	}
	return s.currentResults(ctx, flow)
}

// CurrentResults returns the availability for the leg the session is
// currently selecting.
func (s *SessionService) CurrentResults(ctx context.Context, sessionID string) (*LegResults, error) {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return nil, err
	}
	return s.currentResults(ctx, flow)
}

func (s *SessionService) currentResults(ctx context.Context, flow *Flow) (*LegResults, error) {
	origin, destination, date, ok := flow.ActiveQuery()
	if !ok {
		return nil, ErrInvalidPhase
	}
	leg := LegOutbound
	if snap := flow.Snapshot(); snap.CurrentLeg == LegReturn {
		leg = LegReturn
	}
	return &LegResults{
		Leg:         leg,
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Flights:     s.lookupFlights(ctx, origin, destination, date),
	}, nil
}

// SelectFlight resolves a flight ID against the current leg's results and
// feeds it to the flow.
func (s *SessionService) SelectFlight(ctx context.Context, sessionID, flightID string) (SelectionStatus, error) {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return SelectionStatus{}, err
	}
	results, err := s.currentResults(ctx, flow)
	if err != nil {
		return SelectionStatus{}, err
	}
	for _, flight := range results.Flights {
		if flight.ID == flightID {
			return flow.SelectFlight(flight)
		}
	}
	return SelectionStatus{}, ErrFlightNotInResults
}

// ResetToOutbound discards the session's held outbound pick.
func (s *SessionService) ResetToOutbound(sessionID string) error {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return err
	}
	return flow.ResetToOutbound()
}

// SubmitBooking runs the Booking→Confirmation transition.
func (s *SessionService) SubmitBooking(sessionID string, passenger domain.PassengerInfo, payment domain.PaymentInfo, termsAccepted bool) (domain.BookingRecord, error) {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return domain.BookingRecord{}, err
	}
	return flow.SubmitBooking(passenger, payment, termsAccepted)
}

// Back applies the phase-appropriate backward transition.
func (s *SessionService) Back(sessionID string) error {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return err
	}
	return flow.Back()
}

// StartNewSearch resets the session's flow to an empty Search phase.
func (s *SessionService) StartNewSearch(sessionID string) error {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return err
	}
	flow.StartNewSearch()
	return nil
}

// Navigate moves the session between the flights, MyTrips and Help pages.
func (s *SessionService) Navigate(sessionID string, page Page) error {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return err
	}
	flow.NavigateTo(page)
	return nil
}

// Fare prices the session's current selection.
func (s *SessionService) Fare(sessionID string) (domain.FareBreakdown, error) {
	flow, err := s.Flow(sessionID)
	if err != nil {
		return domain.FareBreakdown{}, err
	}
	return flow.Fare()
}

// lookupFlights fetches availability cache-first, falling back to the
// source. Cache failures are ignored; the source is always correct.
func (s *SessionService) lookupFlights(ctx context.Context, origin, destination string, date time.Time) []domain.Flight {
	if s.cache != nil {
		if cached, err := s.cache.GetResults(ctx, origin, destination, date); err == nil && cached != nil {
			return cached
		}
	}
	flights := s.source.Match(origin, destination, date)
	if s.cache != nil && len(flights) > 0 {
		_ = s.cache.SetResults(ctx, origin, destination, date, flights)
	}
	return flights
}

// ParsePage validates a navigation target from the transport layer.
func ParsePage(value string) (Page, error) {
	switch Page(value) {
	case PageFlights, PageMyTrips, PageHelp:
		return Page(value), nil
	default:
		return "", ErrInvalidPhase
	}
}
