package job

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Service answers catalog queries over an in-memory listing set.
type Service struct {
	jobs []Job
	log  zerolog.Logger
}

// NewService creates a catalog service seeded with the static listings.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		jobs: seedCatalog(),
		log:  log.With().Str("component", "job-service").Logger(),
	}
}

// List returns jobs matching the filters, in catalog order. Filters
// combine with AND; each zero-valued filter is skipped.
func (s *Service) List(filters Filters) []Job {
	out := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if matches(j, filters) {
			out = append(out, j)
		}
	}
	return out
}

// GetByID returns the job with the given ID or ErrJobNotFound.
func (s *Service) GetByID(id string) (*Job, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			j := s.jobs[i]
			return &j, nil
		}
	}
	return nil, ErrJobNotFound
}

// Recommendations returns up to limit jobs ranked by match percentage,
// highest first, each annotated with a normalized score and a reason.
func (s *Service) Recommendations(limit int) []Recommendation {
	if limit <= 0 {
		limit = 10
	}

	ranked := make([]Job, len(s.jobs))
	copy(ranked, s.jobs)
	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].MatchPercentage > ranked[k].MatchPercentage
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]Recommendation, 0, len(ranked))
	for _, j := range ranked {
		reason := "Good match"
		if j.MatchPercentage >= 90 {
			reason = "Top matched"
		}
		if j.Featured {
			reason = "Featured job"
		}
		out = append(out, Recommendation{
			Job:            j,
			Score:          j.MatchPercentage / 100,
			Reason:         reason,
			MatchBreakdown: j.MatchBreakdown,
			FitExplanation: j.FitExplanation,
		})
	}
	return out
}

func matches(j Job, f Filters) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) {
			return false
		}
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(j.Tags, f.Tags) {
		return false
	}
	if f.MinSalary > 0 && (j.Salary == nil || j.Salary.Min < f.MinSalary) {
		return false
	}
	if f.MaxSalary > 0 && (j.Salary == nil || j.Salary.Max > f.MaxSalary) {
		return false
	}
	return true
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}
