package service

import "errors"

var (
	// ErrMissingOrigin is returned when search criteria lack an origin city.
	ErrMissingOrigin = errors.New("origin is required")

	// ErrMissingDestination is returned when search criteria lack a destination city.
	ErrMissingDestination = errors.New("destination is required")

	// ErrMissingDepartureDate is returned when search criteria lack a departure date.
	ErrMissingDepartureDate = errors.New("departure date is required")

	// ErrMissingReturnDate is returned when a round-trip search has no return date.
	ErrMissingReturnDate = errors.New("return date is required for round trips")

	// ErrReturnBeforeDeparture is returned when the return date precedes departure.
	ErrReturnBeforeDeparture = errors.New("return date cannot precede departure date")

	// ErrInvalidPassengerCount is returned when the passenger count is not positive.
	ErrInvalidPassengerCount = errors.New("passenger count must be positive")

	// ErrInvalidTripType is returned when the trip type is neither one-way nor round-trip.
	ErrInvalidTripType = errors.New("invalid trip type")

	// ErrInvalidPhase is returned when an operation is attempted in a phase
	// whose guard is not satisfied. The flow stays on its current phase.
	ErrInvalidPhase = errors.New("operation not allowed in current phase")

	// ErrFlightNotInResults is returned when a selected flight ID is not part
	// of the current leg's results.
	ErrFlightNotInResults = errors.New("flight not found in current results")

	// ErrNotRoundTrip is returned when resetToOutbound is invoked on a one-way search.
	ErrNotRoundTrip = errors.New("outbound reset applies only to round trips")

	// ErrIncompleteBookingFields is returned when booking submission is
	// missing required passenger or payment fields.
	ErrIncompleteBookingFields = errors.New("required booking fields are missing")

	// ErrTermsNotAccepted is returned when booking is submitted without
	// accepting the terms and conditions.
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")

	// ErrNoSelection is returned when a fare is requested before any flight
	// has been selected.
	ErrNoSelection = errors.New("no flight selection in progress")

	// ErrSessionNotFound is returned when no flow exists for a session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrLookupInvalidInput is returned when the trip lookup is called with
	// an empty reference or last name.
	ErrLookupInvalidInput = errors.New("booking reference and last name are required")

	// ErrTripNotFound is returned when no trip matches the lookup pair.
	ErrTripNotFound = errors.New("no booking matches the reference and last name")
)
