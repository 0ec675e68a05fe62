package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HelpTopic is one static help entry.
type HelpTopic struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Help handles GET /v1/help
func Help(c *gin.Context) {
	topics := []HelpTopic{
		{
			Title: "Booking a flight",
			Body:  "Search for a route and date, pick a flight (outbound then return for round trips), then enter passenger and payment details to confirm.",
		},
		{
			Title: "Finding your trip",
			Body:  "Use My Trips with your booking reference and last name to view flight, service and payment details.",
		},
		{
			Title: "Fares",
			Body:  "The total is the per-passenger fare times passengers, plus 15% tax and a flat booking fee.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
