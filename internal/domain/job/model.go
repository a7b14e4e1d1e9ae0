// Package job holds the job board catalog and query logic.
package job

import "errors"

// ErrJobNotFound is returned when no job matches the requested ID.
var ErrJobNotFound = errors.New("job not found")

// SalaryRange is an annual salary band.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// MatchBreakdown scores a candidate's fit per dimension, 0 to 100.
type MatchBreakdown struct {
	Education float64 `json:"education"`
	Skills    float64 `json:"skills"`
	WorkExp   float64 `json:"workExp"`
	ExpLevel  float64 `json:"expLevel"`
}

// Job is a single listing. Field names follow the wire contract the
// frontend consumes, so the JSON tags are camelCase throughout.
type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Type            string          `json:"type"`
	WorkType        string          `json:"workType"`
	Salary          *SalaryRange    `json:"salary,omitempty"`
	Description     string          `json:"description"`
	Requirements    []string        `json:"requirements"`
	Tags            []string        `json:"tags"`
	PostedDate      string          `json:"postedDate"`
	Featured        bool            `json:"featured"`
	Logo            *string         `json:"logo"`
	MatchPercentage float64         `json:"matchPercentage"`
	MatchBreakdown  *MatchBreakdown `json:"matchBreakdown,omitempty"`
	SkillsMatch     string          `json:"skillsMatch,omitempty"`
	ExperienceLevel string          `json:"experienceLevel,omitempty"`
	ApplicantCount  int             `json:"applicantCount"`
	TimePosted      string          `json:"timePosted,omitempty"`
	IsMatched       bool            `json:"isMatched"`
	IsLiked         bool            `json:"isLiked"`
	IsApplied       bool            `json:"isApplied"`
	FitExplanation  string          `json:"fitExplanation,omitempty"`
}

// Filters narrows a catalog listing. Zero values mean "no constraint".
type Filters struct {
	Search    string
	Location  string
	Type      string
	Tags      []string
	MinSalary float64
	MaxSalary float64
}

// Recommendation pairs a job with a normalized match score and the
// reason it surfaced.
type Recommendation struct {
	Job            Job             `json:"job"`
	Score          float64         `json:"score"`
	Reason         string          `json:"reason"`
	MatchBreakdown *MatchBreakdown `json:"matchBreakdown,omitempty"`
	FitExplanation string          `json:"fitExplanation,omitempty"`
}
