package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"flydreamair/internal/domain"
	"flydreamair/internal/inventory"
	"flydreamair/internal/service"
)

const dateLayout = "2006-01-02"

// SearchHandler handles HTTP requests for flight search and selection.
type SearchHandler struct {
	sessions *service.SessionService
	matcher  *inventory.Matcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(sessions *service.SessionService, matcher *inventory.Matcher) *SearchHandler {
	return &SearchHandler{sessions: sessions, matcher: matcher}
}

// SearchRequest is the HTTP request body for submitting a search.
type SearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`          // YYYY-MM-DD
	ReturnDate    string `json:"return_date,omitempty"`   // YYYY-MM-DD, round-trip only
	Passengers    int    `json:"passengers"`
	TripType      string `json:"trip_type"` // one-way | round-trip
}

// SelectFlightRequest is the HTTP request body for selecting a flight.
type SelectFlightRequest struct {
	FlightID string `json:"flight_id"`
}

// FlightResponse is the HTTP representation of a flight.
type FlightResponse struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flight_number"`
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	DepartTime   string   `json:"depart_time"`
	ArriveTime   string   `json:"arrive_time"`
	Duration     string   `json:"duration"`
	Price        int64    `json:"price"`
	Stops        int      `json:"stops"`
	Aircraft     string   `json:"aircraft"`
	Amenities    []string `json:"amenities"`
}

// SearchCriteriaResponse is the HTTP representation of stored criteria.
type SearchCriteriaResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
	TripType      string `json:"trip_type"`
}

// SelectionResponse is the HTTP representation of a flight selection.
type SelectionResponse struct {
	Kind     string          `json:"kind"`
	Outbound FlightResponse  `json:"outbound"`
	Return   *FlightResponse `json:"return,omitempty"`
}

// FareResponse is the HTTP representation of a fare breakdown.
type FareResponse struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Fee      int64 `json:"fee"`
	Total    int64 `json:"total"`
}

// ResultsResponse is the HTTP response for availability results.
type ResultsResponse struct {
	Leg             string                `json:"leg"`
	Origin          string                `json:"origin"`
	Destination     string                `json:"destination"`
	Date            string                `json:"date"`
	Flights         []FlightResponse      `json:"flights"`
	Message         string                `json:"message,omitempty"`
	AvailableRoutes []inventory.RouteInfo `json:"available_routes,omitempty"`
}

// SelectionStatusResponse is the HTTP response for a selection attempt.
type SelectionStatusResponse struct {
	Status    string             `json:"status"` // incomplete | complete
	Phase     string             `json:"phase"`
	Selection *SelectionResponse `json:"selection,omitempty"`
	Fare      *FareResponse      `json:"fare,omitempty"`
}

// Search handles POST /v1/sessions/:id/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	criteria, err := toCriteria(req)
	if err != nil {
		respondError(c, err)
		return
	}

	results, err := h.sessions.SubmitSearch(c.Request.Context(), c.Param("id"), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, h.toResultsResponse(results, c))
}

// Results handles GET /v1/sessions/:id/results
//
// Stop filtering (?stops=all|direct|1-stop) and sorting
// (?sort=price|duration|departure) are presentation concerns applied here,
// never inside the matcher.
func (h *SearchHandler) Results(c *gin.Context) {
	results, err := h.sessions.CurrentResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, h.toResultsResponse(results, c))
}

// Select handles POST /v1/sessions/:id/select
func (h *SearchHandler) Select(c *gin.Context) {
	var req SelectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	status, err := h.sessions.SelectFlight(c.Request.Context(), c.Param("id"), req.FlightID)
	if err != nil {
		respondError(c, err)
		return
	}

	snap, err := h.sessions.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := SelectionStatusResponse{
		Status: string(status.State),
		Phase:  string(snap.Phase),
	}
	if status.State == service.SelectionComplete {
		selection := toSelectionResponse(status.Selection)
		resp.Selection = &selection
		if snap.Fare != nil {
			fare := toFareResponse(*snap.Fare)
			resp.Fare = &fare
		}
	}
	respondJSON(c, http.StatusOK, resp)
}

// ResetSelection handles POST /v1/sessions/:id/selection/reset
func (h *SearchHandler) ResetSelection(c *gin.Context) {
	if err := h.sessions.ResetToOutbound(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	results, err := h.sessions.CurrentResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, h.toResultsResponse(results, c))
}

func (h *SearchHandler) toResultsResponse(results *service.LegResults, c *gin.Context) ResultsResponse {
	flights := filterFlights(results.Flights, c.Query("stops"))
	sortFlights(flights, c.Query("sort"))

	resp := ResultsResponse{
		Leg:         string(results.Leg),
		Origin:      results.Origin,
		Destination: results.Destination,
		Date:        results.Date.Format(dateLayout),
		Flights:     make([]FlightResponse, 0, len(flights)),
	}
	for _, f := range flights {
		resp.Flights = append(resp.Flights, toFlightResponse(f))
	}
	if len(resp.Flights) == 0 {
		resp.Message = "No flights available for this route and date."
		resp.AvailableRoutes = h.matcher.Routes()
	}
	return resp
}

// filterFlights applies the stop-count filter.
func filterFlights(flights []domain.Flight, stops string) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		switch stops {
		case "direct":
			if f.Stops != 0 {
				continue
			}
		case "1-stop":
			if f.Stops != 1 {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}

// sortFlights orders results by the requested key, defaulting to price.
func sortFlights(flights []domain.Flight, key string) {
	switch key {
	case "duration":
		sort.SliceStable(flights, func(i, j int) bool {
			return durationHours(flights[i].Duration) < durationHours(flights[j].Duration)
		})
	case "departure":
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartTime < flights[j].DepartTime
		})
	default:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}
}

// durationHours extracts the leading hour figure from a duration label
// like "8h 45m".
func durationHours(label string) float64 {
	end := 0
	for end < len(label) && (label[end] >= '0' && label[end] <= '9' || label[end] == '.') {
		end++
	}
	hours, err := strconv.ParseFloat(label[:end], 64)
	if err != nil {
		return 0
	}
	return hours
}

func toCriteria(req SearchRequest) (domain.SearchCriteria, error) {
	tripType, err := service.ParseTripType(req.TripType)
	if err != nil {
		return domain.SearchCriteria{}, err
	}

	criteria := domain.SearchCriteria{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		Passengers:  req.Passengers,
		TripType:    tripType,
	}
	if req.DepartureDate != "" {
		date, err := time.Parse(dateLayout, req.DepartureDate)
		if err != nil {
			return domain.SearchCriteria{}, service.ErrMissingDepartureDate
		}
		criteria.DepartureDate = date
	}
	if req.ReturnDate != "" {
		date, err := time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			return domain.SearchCriteria{}, service.ErrMissingReturnDate
		}
		criteria.ReturnDate = date
	}
	return criteria, nil
}

func toCriteriaResponse(c domain.SearchCriteria) SearchCriteriaResponse {
	resp := SearchCriteriaResponse{
		Origin:        c.Origin,
		Destination:   c.Destination,
		DepartureDate: c.DepartureDate.Format(dateLayout),
		Passengers:    c.Passengers,
		TripType:      string(c.TripType),
	}
	if !c.ReturnDate.IsZero() {
		resp.ReturnDate = c.ReturnDate.Format(dateLayout)
	}
	return resp
}

func toFlightResponse(f domain.Flight) FlightResponse {
	return FlightResponse{
		ID:           f.ID,
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		Origin:       f.Origin,
		Destination:  f.Destination,
		DepartTime:   f.DepartTime,
		ArriveTime:   f.ArriveTime,
		Duration:     f.Duration,
		Price:        f.Price,
		Stops:        f.Stops,
		Aircraft:     f.Aircraft,
		Amenities:    f.Amenities,
	}
}

func toSelectionResponse(s domain.FlightSelection) SelectionResponse {
	resp := SelectionResponse{
		Kind:     string(s.Kind),
		Outbound: toFlightResponse(s.Outbound),
	}
	if s.Kind == domain.SelectionRoundTrip {
		ret := toFlightResponse(s.Return)
		resp.Return = &ret
	}
	return resp
}

func toFareResponse(f domain.FareBreakdown) FareResponse {
	return FareResponse{
		Subtotal: f.Subtotal,
		Tax:      f.Tax,
		Fee:      f.Fee,
		Total:    f.Total,
	}
}
