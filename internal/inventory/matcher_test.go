package inventory

import (
	"testing"
	"time"

	"flydreamair/internal/domain"
)

func TestMatch_KnownRouteReturnsFlightsInScheduleOrder(t *testing.T) {
	m := NewMatcher()

	date := time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)
	flights := m.Match("Sydney", "Danang", date)

	if len(flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(flights))
	}
	if flights[0].FlightNumber != "VN 773" || flights[0].Price != 850 {
		t.Errorf("unexpected first flight %s at %d", flights[0].FlightNumber, flights[0].Price)
	}
	if flights[1].FlightNumber != "JQ 507" || flights[1].Price != 650 {
		t.Errorf("unexpected second flight %s at %d", flights[1].FlightNumber, flights[1].Price)
	}
}

func TestMatch_ReturnRoute(t *testing.T) {
	m := NewMatcher()

	date := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	flights := m.Match("Danang", "Sydney", date)

	if len(flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(flights))
	}
	if flights[0].FlightNumber != "VN 774" || flights[0].Price != 920 {
		t.Errorf("unexpected first flight %s at %d", flights[0].FlightNumber, flights[0].Price)
	}
}

func TestMatch_UnknownCombinationsAreEmpty(t *testing.T) {
	m := NewMatcher()

	cases := []struct {
		name                string
		origin, destination string
		date                time.Time
	}{
		{"unknown route", "Melbourne", "Hanoi", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)},
		{"known route, wrong date", "Sydney", "Danang", time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)},
		{"route reversed on wrong date", "Danang", "Sydney", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flights := m.Match(tc.origin, tc.destination, tc.date)
			if len(flights) != 0 {
				t.Errorf("expected no flights, got %d", len(flights))
			}
		})
	}
}

func TestMatch_IgnoresTimeOfDay(t *testing.T) {
	m := NewMatcher()

	date := time.Date(2025, 11, 19, 23, 59, 0, 0, time.UTC)
	if got := len(m.Match("Sydney", "Danang", date)); got != 2 {
		t.Errorf("expected date-only matching, got %d flights", got)
	}
}

func TestMatch_ReturnsCopies(t *testing.T) {
	m := NewMatcher()
	date := time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)

	first := m.Match("Sydney", "Danang", date)
	first[0].Price = 1
	first[0].Amenities[0] = "mutated"

	second := m.Match("Sydney", "Danang", date)
	if second[0].Price != 850 {
		t.Errorf("schedule price mutated through a result copy: %d", second[0].Price)
	}
	if second[0].Amenities[0] != "WiFi" {
		t.Errorf("schedule amenities mutated through a result copy: %v", second[0].Amenities)
	}
}

func TestRoutes_ListsScheduleCombinations(t *testing.T) {
	m := NewMatcher()

	routes := m.Routes()
	if len(routes) != 2 {
		t.Fatalf("expected 2 searchable combinations, got %d", len(routes))
	}
	if routes[0] != (RouteInfo{Origin: "Sydney", Destination: "Danang", Date: "2025-11-19"}) {
		t.Errorf("unexpected first route %+v", routes[0])
	}
	if routes[1] != (RouteInfo{Origin: "Danang", Destination: "Sydney", Date: "2026-02-28"}) {
		t.Errorf("unexpected second route %+v", routes[1])
	}
}

func TestRoutes_FollowsCustomScheduleOrder(t *testing.T) {
	entries := []ScheduleEntry{
		{Date: "2026-01-01", Flight: domain.Flight{ID: "a", Origin: "Hanoi", Destination: "Tokyo"}},
		{Date: "2026-01-02", Flight: domain.Flight{ID: "b", Origin: "Tokyo", Destination: "Hanoi"}},
		{Date: "2026-01-01", Flight: domain.Flight{ID: "c", Origin: "Hanoi", Destination: "Tokyo"}},
	}
	m := NewMatcherWithSchedule(entries)

	routes := m.Routes()
	if len(routes) != 2 {
		t.Fatalf("expected 2 combinations, got %d", len(routes))
	}
	if routes[0].Origin != "Hanoi" || routes[1].Origin != "Tokyo" {
		t.Errorf("routes out of declaration order: %+v", routes)
	}

	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	flights := m.Match("Hanoi", "Tokyo", date)
	if len(flights) != 2 || flights[0].ID != "a" || flights[1].ID != "c" {
		t.Errorf("unexpected flights for shared key: %+v", flights)
	}
}
