package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flydreamair/internal/domain"
	"flydreamair/internal/service"
)

// SessionHandler handles HTTP requests for booking-flow sessions.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSessionResponse is the HTTP response for creating a session.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Phase     string `json:"phase"`
}

// SessionStateResponse is the rendered view of a session's flow. Only the
// fields legal for the current phase are populated.
type SessionStateResponse struct {
	Phase           string                  `json:"phase"`
	Criteria        *SearchCriteriaResponse `json:"criteria,omitempty"`
	CurrentLeg      string                  `json:"current_leg,omitempty"`
	PendingOutbound *FlightResponse         `json:"pending_outbound,omitempty"`
	Selection       *SelectionResponse      `json:"selection,omitempty"`
	Booking         *BookingResponse        `json:"booking,omitempty"`
	Fare            *FareResponse           `json:"fare,omitempty"`
}

// NavigateRequest is the HTTP request body for page navigation.
type NavigateRequest struct {
	Page string `json:"page"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	id := h.sessions.CreateSession()
	respondJSON(c, http.StatusCreated, CreateSessionResponse{
		SessionID: id,
		Phase:     string(domain.PhaseSearch),
	})
}

// Get handles GET /v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	snap, err := h.sessions.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toSessionState(snap))
}

// Navigate handles POST /v1/sessions/:id/navigate
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	page, err := service.ParsePage(req.Page)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown page"})
		return
	}

	if err := h.sessions.Navigate(c.Param("id"), page); err != nil {
		respondError(c, err)
		return
	}

	snap, err := h.sessions.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toSessionState(snap))
}

// NewSearch handles POST /v1/sessions/:id/new-search
func (h *SessionHandler) NewSearch(c *gin.Context) {
	if err := h.sessions.StartNewSearch(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, SessionStateResponse{Phase: string(domain.PhaseSearch)})
}

// Back handles POST /v1/sessions/:id/back
func (h *SessionHandler) Back(c *gin.Context) {
	if err := h.sessions.Back(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	snap, err := h.sessions.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toSessionState(snap))
}

// toSessionState converts a flow snapshot into its response shape.
func toSessionState(snap service.FlowSnapshot) SessionStateResponse {
	resp := SessionStateResponse{Phase: string(snap.Phase)}
	if snap.Criteria != nil {
		criteria := toCriteriaResponse(*snap.Criteria)
		resp.Criteria = &criteria
	}
	if snap.CurrentLeg != "" {
		resp.CurrentLeg = string(snap.CurrentLeg)
	}
	if snap.PendingOutbound != nil {
		flight := toFlightResponse(*snap.PendingOutbound)
		resp.PendingOutbound = &flight
	}
	if snap.Selection != nil {
		selection := toSelectionResponse(*snap.Selection)
		resp.Selection = &selection
	}
	if snap.Record != nil {
		booking := toBookingResponse(*snap.Record)
		resp.Booking = &booking
	}
	if snap.Fare != nil {
		fare := toFareResponse(*snap.Fare)
		resp.Fare = &fare
	}
	return resp
}
