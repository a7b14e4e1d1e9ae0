package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Srujankatukam/job-nova/internal/domain/job"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/handlers"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/requests"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/responses"
	"github.com/Srujankatukam/job-nova/internal/utils/platformerrors"
)

// RegisterJobRoutes registers the job board routes.
func RegisterJobRoutes(router gin.IRoutes, handler *handlers.JobHandler) {
	router.GET("/jobs", listJobs(handler))
	router.GET("/jobs/recommendations", jobRecommendations(handler))
	router.GET("/jobs/:id", getJob(handler))
}

// listJobs godoc
// @Summary      List jobs
// @Description  Returns the job catalog with optional filters. Filters combine with AND.
// @Tags         Jobs API
// @Produce      json
// @Param        search query string false "Search in title, company and description"
// @Param        location query string false "Location substring"
// @Param        type query string false "Job type"
// @Param        tags query string false "Comma-separated tags, any match"
// @Param        minSalary query number false "Minimum salary"
// @Param        maxSalary query number false "Maximum salary"
// @Success      200 {array} job.Job
// @Failure      400 {object} platformerrors.HTTPErrorResponse
// @Router       /jobs [get]
func listJobs(handler *handlers.JobHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q requests.JobQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid query parameters")
			return
		}

		filters := job.Filters{
			Search:    q.Search,
			Location:  q.Location,
			Type:      q.Type,
			MinSalary: q.MinSalary,
			MaxSalary: q.MaxSalary,
		}
		if q.Tags != "" {
			filters.Tags = strings.Split(q.Tags, ",")
		}

		c.JSON(http.StatusOK, handler.List(filters))
	}
}

// jobRecommendations godoc
// @Summary      Get job recommendations
// @Description  Returns jobs ranked by match percentage with a score and reason.
// @Tags         Jobs API
// @Produce      json
// @Param        limit query int false "Number of recommendations (1-50)" default(10)
// @Success      200 {array} job.Recommendation
// @Failure      400 {object} platformerrors.HTTPErrorResponse
// @Router       /jobs/recommendations [get]
func jobRecommendations(handler *handlers.JobHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q requests.RecommendationQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "limit must be between 1 and 50")
			return
		}

		c.JSON(http.StatusOK, handler.Recommendations(q.Limit))
	}
}

// getJob godoc
// @Summary      Get a job
// @Tags         Jobs API
// @Produce      json
// @Param        id path string true "Job ID"
// @Success      200 {object} job.Job
// @Failure      404 {object} platformerrors.HTTPErrorResponse
// @Router       /jobs/{id} [get]
func getJob(handler *handlers.JobHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		j, err := handler.GetByID(id)
		if err != nil {
			responses.HandleError(c, err, "job not found")
			return
		}

		c.JSON(http.StatusOK, j)
	}
}
