// Package directory holds the read-only trip directory consulted by the
// trip lookup validator. Records are keyed by booking reference (PNR) and
// guarded by the booked passenger's last name.
package directory

import (
	"strings"

	"flydreamair/internal/domain"
)

// entry pairs a trip record with the last name required to retrieve it.
type entry struct {
	lastName string
	record   domain.TripRecord
}

// Static is an in-memory trip directory seeded with fixture records.
type Static struct {
	entries map[string]entry
}

// NewStatic creates the fixture-backed trip directory.
func NewStatic() *Static {
	d := &Static{entries: make(map[string]entry)}
	for _, r := range fixtureRecords() {
		d.entries[r.record.PNR] = r
	}
	return d
}

// Match returns the trip record for the given reference if the last name
// matches the booked passenger. The reference must already be normalized to
// uppercase; last name comparison is case-insensitive.
func (d *Static) Match(reference, lastName string) (domain.TripRecord, bool) {
	e, ok := d.entries[reference]
	if !ok || !strings.EqualFold(e.lastName, lastName) {
		return domain.TripRecord{}, false
	}
	return e.record, true
}

func fixtureRecords() []entry {
	return []entry{
		{
			lastName: "Luu",
			record: domain.TripRecord{
				ID:            "SKY001",
				PNR:           "VJ123",
				PassengerName: "John Smith",
				Flight: domain.TripFlight{
					Airline:         "VietJet Air",
					FlightNumber:    "VJ123",
					Origin:          "Sydney",
					Destination:     "Danang",
					OriginCode:      "SYD",
					DestinationCode: "DAD",
					Date:            "November 19, 2025",
					DepartureTime:   "08:30",
					ArrivalTime:     "14:45",
					Duration:        "7h 15m",
				},
				Status: domain.TripStatusConfirmed,
				Seat:   "12A",
				Services: domain.TripServices{
					Baggage: domain.TripBaggage{
						CheckedBags: 1,
						Weight:      "23kg",
						CarryOn:     "7kg",
					},
					Meal:             "Vegetarian",
					Insurance:        true,
					PriorityBoarding: true,
				},
				Payment: domain.TripPayment{
					TicketPrice:       520,
					ServiceFees:       60,
					TotalPaid:         580,
					OutstandingAmount: 0,
					Status:            "paid",
					InvoiceNumber:     "INV-VJ123-001",
				},
			},
		},
		{
			lastName: "Luu",
			record: domain.TripRecord{
				ID:            "SKY002",
				PNR:           "VA123",
				PassengerName: "Emily Johnson",
				Flight: domain.TripFlight{
					Airline:         "VietJet Air",
					FlightNumber:    "VJ456",
					Origin:          "Danang",
					Destination:     "Sydney",
					OriginCode:      "DAD",
					DestinationCode: "SYD",
					Date:            "February 28, 2026",
					DepartureTime:   "16:20",
					ArrivalTime:     "05:30+1",
					Duration:        "8h 10m",
				},
				Status: domain.TripStatusPending,
				Seat:   "15C",
				Services: domain.TripServices{
					Baggage: domain.TripBaggage{
						CheckedBags: 2,
						Weight:      "46kg",
						CarryOn:     "7kg",
					},
					Meal:             "Standard",
					Insurance:        false,
					PriorityBoarding: false,
				},
				Payment: domain.TripPayment{
					TicketPrice:       550,
					ServiceFees:       70,
					TotalPaid:         520,
					OutstandingAmount: 100,
					Status:            "partial",
					InvoiceNumber:     "INV-VJ456-002",
				},
			},
		},
	}
}
