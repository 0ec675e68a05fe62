package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flydreamair/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrFlightNotInResults),
		errors.Is(err, service.ErrTripNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingOrigin),
		errors.Is(err, service.ErrMissingDestination),
		errors.Is(err, service.ErrMissingDepartureDate),
		errors.Is(err, service.ErrMissingReturnDate),
		errors.Is(err, service.ErrReturnBeforeDeparture),
		errors.Is(err, service.ErrInvalidPassengerCount),
		errors.Is(err, service.ErrInvalidTripType),
		errors.Is(err, service.ErrIncompleteBookingFields),
		errors.Is(err, service.ErrTermsNotAccepted),
		errors.Is(err, service.ErrLookupInvalidInput):
		return http.StatusBadRequest

	// Guarded transitions - the flow stays where it is
	case errors.Is(err, service.ErrInvalidPhase),
		errors.Is(err, service.ErrNotRoundTrip),
		errors.Is(err, service.ErrNoSelection):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
