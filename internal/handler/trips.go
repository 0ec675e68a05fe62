package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flydreamair/internal/domain"
	"flydreamair/internal/service"
)

// TripsHandler handles HTTP requests for trip lookup.
type TripsHandler struct {
	lookup *service.LookupService
}

// NewTripsHandler creates a new TripsHandler.
func NewTripsHandler(lookup *service.LookupService) *TripsHandler {
	return &TripsHandler{lookup: lookup}
}

// LookupTripRequest is the HTTP request body for a trip lookup.
type LookupTripRequest struct {
	Reference string `json:"reference"`
	LastName  string `json:"last_name"`
}

// TripFlightResponse is the flight detail of a looked-up trip.
type TripFlightResponse struct {
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flight_number"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`
	Date            string `json:"date"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	Duration        string `json:"duration"`
}

// TripServicesResponse is the service detail of a looked-up trip.
type TripServicesResponse struct {
	CheckedBags      int    `json:"checked_bags"`
	BaggageWeight    string `json:"baggage_weight"`
	CarryOn          string `json:"carry_on"`
	Meal             string `json:"meal"`
	Insurance        bool   `json:"insurance"`
	PriorityBoarding bool   `json:"priority_boarding"`
}

// TripPaymentResponse is the payment detail of a looked-up trip.
type TripPaymentResponse struct {
	TicketPrice       int64  `json:"ticket_price"`
	ServiceFees       int64  `json:"service_fees"`
	TotalPaid         int64  `json:"total_paid"`
	OutstandingAmount int64  `json:"outstanding_amount"`
	Status            string `json:"status"`
	InvoiceNumber     string `json:"invoice_number"`
}

// TripResponse is the HTTP representation of a directory trip record.
type TripResponse struct {
	ID            string               `json:"id"`
	PNR           string               `json:"pnr"`
	PassengerName string               `json:"passenger_name"`
	Status        string               `json:"status"`
	Seat          string               `json:"seat"`
	Flight        TripFlightResponse   `json:"flight"`
	Services      TripServicesResponse `json:"services"`
	Payment       TripPaymentResponse  `json:"payment"`
}

// Lookup handles POST /v1/trips/lookup
func (h *TripsHandler) Lookup(c *gin.Context) {
	var req LookupTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.lookup.Lookup(req.Reference, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(record))
}

func toTripResponse(r domain.TripRecord) TripResponse {
	return TripResponse{
		ID:            r.ID,
		PNR:           r.PNR,
		PassengerName: r.PassengerName,
		Status:        string(r.Status),
		Seat:          r.Seat,
		Flight: TripFlightResponse{
			Airline:         r.Flight.Airline,
			FlightNumber:    r.Flight.FlightNumber,
			Origin:          r.Flight.Origin,
			Destination:     r.Flight.Destination,
			OriginCode:      r.Flight.OriginCode,
			DestinationCode: r.Flight.DestinationCode,
			Date:            r.Flight.Date,
			DepartureTime:   r.Flight.DepartureTime,
			ArrivalTime:     r.Flight.ArrivalTime,
			Duration:        r.Flight.Duration,
		},
		Services: TripServicesResponse{
			CheckedBags:      r.Services.Baggage.CheckedBags,
			BaggageWeight:    r.Services.Baggage.Weight,
			CarryOn:          r.Services.Baggage.CarryOn,
			Meal:             r.Services.Meal,
			Insurance:        r.Services.Insurance,
			PriorityBoarding: r.Services.PriorityBoarding,
		},
		Payment: TripPaymentResponse{
			TicketPrice:       r.Payment.TicketPrice,
			ServiceFees:       r.Payment.ServiceFees,
			TotalPaid:         r.Payment.TotalPaid,
			OutstandingAmount: r.Payment.OutstandingAmount,
			Status:            r.Payment.Status,
			InvoiceNumber:     r.Payment.InvoiceNumber,
		},
	}
}
