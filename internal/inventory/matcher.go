// Package inventory provides flight availability lookup over a static
// fixture schedule. The matcher is pure and data-driven so a live inventory
// source can replace it without touching the booking flow.
package inventory

import (
	"time"

	"flydreamair/internal/domain"
)

// routeKey identifies one searchable (origin, destination, date) triple.
type routeKey struct {
	origin      string
	destination string
	date        string // calendar date, YYYY-MM-DD
}

// ScheduleEntry pins a flight to the calendar date it operates on.
type ScheduleEntry struct {
	Date   string // YYYY-MM-DD
	Flight domain.Flight
}

// RouteInfo describes one searchable route/date combination.
type RouteInfo struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Matcher answers availability queries from its schedule. It is a total
// function: unknown routes and dates yield an empty result, never an error.
type Matcher struct {
	schedule map[routeKey][]domain.Flight
	order    []routeKey
}

// NewMatcher creates a Matcher backed by the default fixture schedule.
func NewMatcher() *Matcher {
	return NewMatcherWithSchedule(defaultSchedule())
}

// NewMatcherWithSchedule creates a Matcher from explicit schedule entries.
// Result order for each route follows entry declaration order.
func NewMatcherWithSchedule(entries []ScheduleEntry) *Matcher {
	m := &Matcher{schedule: make(map[routeKey][]domain.Flight, len(entries))}
	for _, e := range entries {
		key := routeKey{origin: e.Flight.Origin, destination: e.Flight.Destination, date: e.Date}
		if _, ok := m.schedule[key]; !ok {
			m.order = append(m.order, key)
		}
		m.schedule[key] = append(m.schedule[key], e.Flight)
	}
	return m
}

// Match returns the flights operating the given route on the given date,
// in schedule order. Unknown combinations return an empty slice.
func (m *Matcher) Match(origin, destination string, date time.Time) []domain.Flight {
	key := routeKey{origin: origin, destination: destination, date: date.Format("2006-01-02")}
	flights := m.schedule[key]

	// Copies keep the schedule immutable from the caller's side.
	out := make([]domain.Flight, len(flights))
	for i, f := range flights {
		out[i] = f
		out[i].Amenities = append([]string(nil), f.Amenities...)
	}
	return out
}

// Routes lists the searchable route/date combinations in schedule order,
// used by the results empty state to hint at what the schedule covers.
func (m *Matcher) Routes() []RouteInfo {
	routes := make([]RouteInfo, 0, len(m.order))
	for _, key := range m.order {
		routes = append(routes, RouteInfo{
			Origin:      key.origin,
			Destination: key.destination,
			Date:        key.date,
		})
	}
	return routes
}
