package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"flydreamair/internal/domain"
	"flydreamair/internal/inventory"
)

// countingSource wraps the fixture matcher and counts lookups so cache hits
// are observable.
type countingSource struct {
	matcher *inventory.Matcher
	calls   int
}

func (s *countingSource) Match(origin, destination string, date time.Time) []domain.Flight {
	s.calls++
	return s.matcher.Match(origin, destination, date)
}

// mapCache is an in-memory ResultsCache.
type mapCache struct {
	entries map[string][]domain.Flight
	getErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]domain.Flight)}
}

func (c *mapCache) key(origin, destination string, date time.Time) string {
	return fmt.Sprintf("%s|%s|%s", origin, destination, date.Format("2006-01-02"))
}

func (c *mapCache) GetResults(ctx context.Context, origin, destination string, date time.Time) ([]domain.Flight, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[c.key(origin, destination, date)], nil
}

func (c *mapCache) SetResults(ctx context.Context, origin, destination string, date time.Time, flights []domain.Flight) error {
	c.entries[c.key(origin, destination, date)] = flights
	return nil
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc := NewSessionService(inventory.NewMatcher(), nil)

	if _, err := svc.Snapshot("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.SubmitSearch(context.Background(), "missing", roundTripCriteria()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_SearchReturnsOutboundLeg(t *testing.T) {
	svc := NewSessionService(inventory.NewMatcher(), nil)
	id := svc.CreateSession()

	results, err := svc.SubmitSearch(context.Background(), id, roundTripCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results.Leg != LegOutbound {
		t.Errorf("expected outbound leg, got %s", results.Leg)
	}
	if len(results.Flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(results.Flights))
	}
}

func TestSessionService_SelectResolvesAgainstCurrentResults(t *testing.T) {
	svc := NewSessionService(inventory.NewMatcher(), nil)
	id := svc.CreateSession()
	ctx := context.Background()

	if _, err := svc.SubmitSearch(ctx, id, roundTripCriteria()); err != nil {
		t.Fatalf("submit search: %v", err)
	}

	// A return-leg flight is not selectable while the outbound leg is active.
	if _, err := svc.SelectFlight(ctx, id, "dad-syd-1"); !errors.Is(err, ErrFlightNotInResults) {
		t.Errorf("expected ErrFlightNotInResults, got %v", err)
	}

	status, err := svc.SelectFlight(ctx, id, "syd-dad-1")
	if err != nil {
		t.Fatalf("select outbound: %v", err)
	}
	if status.State != SelectionIncomplete {
		t.Fatalf("expected incomplete, got %s", status.State)
	}

	results, err := svc.CurrentResults(ctx, id)
	if err != nil {
		t.Fatalf("current results: %v", err)
	}
	if results.Leg != LegReturn || results.Origin != "Danang" {
		t.Errorf("expected reversed return leg, got %s %s->%s", results.Leg, results.Origin, results.Destination)
	}

	status, err = svc.SelectFlight(ctx, id, "dad-syd-1")
	if err != nil {
		t.Fatalf("select return: %v", err)
	}
	if status.State != SelectionComplete {
		t.Errorf("expected complete, got %s", status.State)
	}
}

func TestSessionService_CacheServesRepeatLookups(t *testing.T) {
	source := &countingSource{matcher: inventory.NewMatcher()}
	cache := newMapCache()
	svc := NewSessionService(source, cache)
	ctx := context.Background()

	id := svc.CreateSession()
	if _, err := svc.SubmitSearch(ctx, id, roundTripCriteria()); err != nil {
		t.Fatalf("submit search: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected 1 source lookup, got %d", source.calls)
	}

	// Same leg again: the cache answers, the source is not consulted.
	if _, err := svc.CurrentResults(ctx, id); err != nil {
		t.Fatalf("current results: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("expected cache hit, source consulted %d times", source.calls)
	}
}

func TestSessionService_CacheFailureFallsBackToSource(t *testing.T) {
	source := &countingSource{matcher: inventory.NewMatcher()}
	cache := newMapCache()
	cache.getErr = errors.New("connection refused")
	svc := NewSessionService(source, cache)

	id := svc.CreateSession()
	results, err := svc.SubmitSearch(context.Background(), id, roundTripCriteria())
	if err != nil {
		t.Fatalf("submit search: %v", err)
	}
	if len(results.Flights) != 2 {
		t.Errorf("expected source results despite cache failure, got %d flights", len(results.Flights))
	}
	if source.calls != 1 {
		t.Errorf("expected 1 source lookup, got %d", source.calls)
	}
}

func TestSessionService_EmptyResultsAreNotCached(t *testing.T) {
	source := &countingSource{matcher: inventory.NewMatcher()}
	cache := newMapCache()
	svc := NewSessionService(source, cache)
	ctx := context.Background()

	id := svc.CreateSession()
	criteria := roundTripCriteria()
	criteria.Origin = "Melbourne"
	criteria.Destination = "Hanoi"

	results, err := svc.SubmitSearch(ctx, id, criteria)
	if err != nil {
		t.Fatalf("submit search: %v", err)
	}
	if len(results.Flights) != 0 {
		t.Fatalf("expected no flights, got %d", len(results.Flights))
	}
	if len(cache.entries) != 0 {
		t.Errorf("empty result was cached: %v", cache.entries)
	}
}

func TestSessionService_SessionsAreIndependent(t *testing.T) {
	svc := NewSessionService(inventory.NewMatcher(), nil)
	ctx := context.Background()

	first := svc.CreateSession()
	second := svc.CreateSession()

	if _, err := svc.SubmitSearch(ctx, first, oneWayCriteria()); err != nil {
		t.Fatalf("submit search: %v", err)
	}

	snap, err := svc.Snapshot(second)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Phase != domain.PhaseSearch {
		t.Errorf("second session moved to %s by first session's search", snap.Phase)
	}
}
