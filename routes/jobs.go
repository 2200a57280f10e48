package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlehapa-server/middleware"
	"hustlehapa-server/models"
	"hustlehapa-server/services"
)

// JobHandler serves the job board endpoints.
type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// RegisterJobRoutes registers all job-related routes
func RegisterJobRoutes(router *gin.RouterGroup, h *JobHandler, authRequired gin.HandlerFunc) {
	router.GET("/jobs", h.listOpenJobs)
	router.POST("/jobs", authRequired, h.postJob)
	router.GET("/employer/jobs", authRequired, h.listEmployerJobs)
}

// listOpenJobs returns the open job board, optionally filtered by the
// search, type and location query parameters.
func (h *JobHandler) listOpenJobs(c *gin.Context) {
	jobs, err := h.jobs.ListOpenJobs(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	filter := services.JobFilter{
		Text:     c.Query("search"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
	}
	jobs = services.SearchJobs(jobs, filter)

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *JobHandler) postJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.JobCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job data", "details": err.Error()})
		return
	}

	job, err := h.jobs.PostJob(c.Request.Context(), req, user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *JobHandler) listEmployerJobs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	jobs, err := h.jobs.ListJobsByEmployer(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}
