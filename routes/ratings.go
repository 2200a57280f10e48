package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlehapa-server/middleware"
	"hustlehapa-server/models"
	"hustlehapa-server/services"
)

// RatingHandler serves the worker reputation endpoints.
type RatingHandler struct {
	ratings *services.RatingService
}

func NewRatingHandler(ratings *services.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// RegisterRatingRoutes registers all rating-related routes
func RegisterRatingRoutes(router *gin.RouterGroup, h *RatingHandler, authRequired gin.HandlerFunc) {
	router.POST("/jobs/:id/rating", authRequired, h.rateJob)
	router.GET("/workers/:id/rating", h.workerRating)
}

func (h *RatingHandler) rateJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.RatingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating data", "details": err.Error()})
		return
	}

	rating, err := h.ratings.RateCompletedWork(c.Request.Context(), c.Param("id"), user, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

// workerRating returns a worker's rating ledger and its average. Public
// so job seekers can be vetted before hiring.
func (h *RatingHandler) workerRating(c *gin.Context) {
	workerID := c.Param("id")

	ratings, err := h.ratings.RatingsForUser(c.Request.Context(), workerID)
	if err != nil {
		fail(c, err)
		return
	}
	average, err := h.ratings.AverageRating(c.Request.Context(), workerID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"average": average,
		"count":   len(ratings),
	})
}
