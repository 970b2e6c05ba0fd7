package dto

import (
	"jobmatch/internal/domain/job"
	"jobmatch/internal/recommendation"

	"github.com/google/uuid"
)

type MatchResultResponse struct {
	JobID         uuid.UUID `json:"job_id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	MatchScore    int       `json:"match_score"`
	MatchReasons  []string  `json:"match_reasons"`
	JobDetails    job.Job   `json:"job_details"`
	UsingFallback bool      `json:"using_fallback,omitempty"`
}

func NewMatchResultResponses(results []recommendation.MatchResult) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(results))
	for _, r := range results {
		reasons := r.MatchReasons
		if reasons == nil {
			reasons = []string{}
		}
		out = append(out, MatchResultResponse{
			JobID:         r.JobID,
			Title:         r.Title,
			Company:       r.Company,
			MatchScore:    r.MatchScore,
			MatchReasons:  reasons,
			JobDetails:    r.JobDetails,
			UsingFallback: r.UsingFallback,
		})
	}
	return out
}
