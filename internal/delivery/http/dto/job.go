package dto

import (
	ucjob "jobmatch/internal/usecase/job"
)

type JobRequest struct {
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Skills      SkillList `json:"skills"`
	JobType     string    `json:"job_type"`
	Salary      *string   `json:"salary"`
}

func (r JobRequest) Input() ucjob.Input {
	return ucjob.Input{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		Skills:      []string(r.Skills),
		JobType:     r.JobType,
		Salary:      r.Salary,
	}
}

type SeedResponse struct {
	Count int `json:"count"`
}
