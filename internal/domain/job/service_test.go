package job

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWithoutFiltersReturnsCatalog(t *testing.T) {
	svc := NewService(zerolog.Nop())

	jobs := svc.List(Filters{})
	assert.Len(t, jobs, 8)
}

func TestListFilters(t *testing.T) {
	svc := NewService(zerolog.Nop())

	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{
			name:    "search matches title case-insensitively",
			filters: Filters{Search: "network"},
			wantIDs: []string{"2"},
		},
		{
			name:    "search matches description",
			filters: Filters{Search: "tailwind"},
			wantIDs: []string{"8"},
		},
		{
			name:    "location substring",
			filters: Filters{Location: "austin"},
			wantIDs: []string{"1", "7"},
		},
		{
			name:    "tags match any, case-insensitive",
			filters: Filters{Tags: []string{"ux", "frontend"}},
			wantIDs: []string{"4", "8"},
		},
		{
			name:    "salary band",
			filters: Filters{MinSalary: 140000, MaxSalary: 200000},
			wantIDs: []string{"5", "6"},
		},
		{
			name:    "filters compose with AND",
			filters: Filters{Search: "full-stack", Location: "san francisco"},
			wantIDs: []string{"5"},
		},
		{
			name:    "no match",
			filters: Filters{Search: "cobol"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := svc.List(tt.filters)
			ids := make([]string, 0, len(jobs))
			for _, j := range jobs {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(zerolog.Nop())

	j, err := svc.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer, Network Infrastructure", j.Title)

	_, err = svc.GetByID("999")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRecommendationsRankedByMatch(t *testing.T) {
	svc := NewService(zerolog.Nop())

	recs := svc.Recommendations(10)
	require.Len(t, recs, 8)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Job.MatchPercentage, recs[i].Job.MatchPercentage)
	}

	// Score is the normalized match percentage.
	assert.InDelta(t, recs[0].Job.MatchPercentage/100, recs[0].Score, 0.001)
}

func TestRecommendationsLimit(t *testing.T) {
	svc := NewService(zerolog.Nop())

	assert.Len(t, svc.Recommendations(3), 3)
	assert.Len(t, svc.Recommendations(0), 8)
}

func TestRecommendationReasons(t *testing.T) {
	svc := NewService(zerolog.Nop())

	recs := svc.Recommendations(10)
	byID := make(map[string]Recommendation, len(recs))
	for _, r := range recs {
		byID[r.Job.ID] = r
	}

	// Featured wins over the match threshold.
	assert.Equal(t, "Featured job", byID["2"].Reason)
	// Not featured, match >= 90.
	assert.Equal(t, "Top matched", byID["4"].Reason)
	// Not featured, match < 90.
	assert.Equal(t, "Good match", byID["1"].Reason)
}
