package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flydreamair/internal/domain"
	"flydreamair/internal/service"
)

// BookingHandler handles HTTP requests for booking submission and fares.
type BookingHandler struct {
	sessions *service.SessionService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(sessions *service.SessionService) *BookingHandler {
	return &BookingHandler{sessions: sessions}
}

// PassengerRequest is the passenger section of a booking submission.
type PassengerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}

// PaymentRequest is the payment section of a booking submission. Card
// details are captured, never charged.
type PaymentRequest struct {
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	NameOnCard     string `json:"name_on_card"`
	BillingAddress string `json:"billing_address"`
	City           string `json:"city"`
	ZipCode        string `json:"zip_code"`
}

// SubmitBookingRequest is the HTTP request body for submitting a booking.
type SubmitBookingRequest struct {
	Passenger    PassengerRequest `json:"passenger"`
	Payment      PaymentRequest   `json:"payment"`
	AgreeToTerms bool             `json:"agree_to_terms"`
}

// BookingResponse is the HTTP representation of a booking record.
type BookingResponse struct {
	Reference      string            `json:"reference"`
	PassengerName  string            `json:"passenger_name"`
	PassengerEmail string            `json:"passenger_email"`
	Selection      SelectionResponse `json:"selection"`
	Fare           FareResponse      `json:"fare"`
	CreatedAt      string            `json:"created_at"`
}

// Submit handles POST /v1/sessions/:id/booking
func (h *BookingHandler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.sessions.SubmitBooking(
		c.Param("id"),
		domain.PassengerInfo{
			FirstName:   req.Passenger.FirstName,
			LastName:    req.Passenger.LastName,
			Email:       req.Passenger.Email,
			Phone:       req.Passenger.Phone,
			DateOfBirth: req.Passenger.DateOfBirth,
			Gender:      req.Passenger.Gender,
		},
		domain.PaymentInfo{
			CardNumber:     req.Payment.CardNumber,
			ExpiryDate:     req.Payment.ExpiryDate,
			CVV:            req.Payment.CVV,
			NameOnCard:     req.Payment.NameOnCard,
			BillingAddress: req.Payment.BillingAddress,
			City:           req.Payment.City,
			ZipCode:        req.Payment.ZipCode,
		},
		req.AgreeToTerms,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(record))
}

// Fare handles GET /v1/sessions/:id/fare
func (h *BookingHandler) Fare(c *gin.Context) {
	fare, err := h.sessions.Fare(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toFareResponse(fare))
}

func toBookingResponse(record domain.BookingRecord) BookingResponse {
	return BookingResponse{
		Reference:      record.Reference,
		PassengerName:  record.Passenger.FirstName + " " + record.Passenger.LastName,
		PassengerEmail: record.Passenger.Email,
		Selection:      toSelectionResponse(record.Selection),
		Fare:           toFareResponse(record.Fare),
		CreatedAt:      record.CreatedAt.Format(time.RFC3339),
	}
}
