package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlehapa-server/middleware"
	"hustlehapa-server/models"
	"hustlehapa-server/services"
)

// ApplicationHandler serves the application workflow endpoints.
type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// RegisterApplicationRoutes registers all application-related routes
func RegisterApplicationRoutes(router *gin.RouterGroup, h *ApplicationHandler, authRequired gin.HandlerFunc) {
	router.POST("/jobs/:id/apply", authRequired, h.apply)
	router.GET("/jobs/:id/applications", authRequired, h.listForJob)
	router.POST("/applications/:id/decision", authRequired, h.decide)
	router.GET("/applications", authRequired, h.listMine)
}

func (h *ApplicationHandler) apply(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	application, err := h.applications.Apply(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": application})
}

func (h *ApplicationHandler) listForJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	apps, err := h.applications.ApplicationsForJob(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}

func (h *ApplicationHandler) decide(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid decision data", "details": err.Error()})
		return
	}

	application, err := h.applications.Decide(c.Request.Context(), c.Param("id"), req.Status, req.JobDate, user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) listMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	apps, err := h.applications.ApplicationsForUser(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}
