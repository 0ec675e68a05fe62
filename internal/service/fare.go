package service

import "flydreamair/internal/domain"

// Fare constants, in whole currency units.
const (
	taxRatePercent = 15
	bookingFee     = 29
)

// ComputeFare prices a selection for the given passenger count. It is the
// single source of truth for fares: both the booking and confirmation
// collaborators call it, so displayed totals can never drift apart.
//
// Subtotal is the per-passenger leg total times the passenger count. Tax is
// 15% of the subtotal rounded half-up. The booking fee is a flat 29.
// passengerCount is validated by the search criteria upstream; it is a
// precondition here, not a runtime check.
func ComputeFare(selection domain.FlightSelection, passengerCount int) domain.FareBreakdown {
	var perPassenger int64
	for _, leg := range selection.Legs() {
		perPassenger += leg.Price
	}

	subtotal := perPassenger * int64(passengerCount)
	tax := (subtotal*taxRatePercent + 50) / 100 // round half-up
	return domain.FareBreakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Fee:      bookingFee,
		Total:    subtotal + tax + bookingFee,
	}
}
