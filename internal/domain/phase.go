package domain

// Phase represents the current step of the booking flow.
type Phase string

const (
	PhaseSearch       Phase = "SEARCH"
	PhaseResults      Phase = "RESULTS"
	PhaseBooking      Phase = "BOOKING"
	PhaseConfirmation Phase = "CONFIRMATION"
	PhaseMyTrips      Phase = "MY_TRIPS"
	PhaseHelp         Phase = "HELP"
)
