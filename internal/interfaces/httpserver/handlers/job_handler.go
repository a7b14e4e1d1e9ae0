package handlers

import (
	"github.com/Srujankatukam/job-nova/internal/domain/job"
)

// JobHandler handles job board requests.
type JobHandler struct {
	service *job.Service
}

// NewJobHandler creates a new job handler.
func NewJobHandler(service *job.Service) *JobHandler {
	return &JobHandler{service: service}
}

// List returns the catalog filtered by the given criteria.
func (h *JobHandler) List(filters job.Filters) []job.Job {
	return h.service.List(filters)
}

// GetByID returns one job or job.ErrJobNotFound.
func (h *JobHandler) GetByID(id string) (*job.Job, error) {
	return h.service.GetByID(id)
}

// Recommendations returns ranked recommendations.
func (h *JobHandler) Recommendations(limit int) []job.Recommendation {
	return h.service.Recommendations(limit)
}
