package domain

import "time"

// PassengerInfo holds the traveller details captured on the booking form.
// All fields are required before a booking can be submitted.
type PassengerInfo struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth string
	Gender      string
}

// PaymentInfo holds the card and billing details captured on the booking
// form. No charge is ever made against them.
type PaymentInfo struct {
	CardNumber     string
	ExpiryDate     string
	CVV            string
	NameOnCard     string
	BillingAddress string
	City           string
	ZipCode        string
}

// BookingRecord is created once at the booking step and is immutable from
// the moment the flow reaches confirmation. It lives only until the user
// starts a new search.
type BookingRecord struct {
	Reference string
	Selection FlightSelection
	Passenger PassengerInfo
	Payment   PaymentInfo
	Criteria  SearchCriteria
	Fare      FareBreakdown
	CreatedAt time.Time
}
