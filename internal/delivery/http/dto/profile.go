package dto

import (
	ucprofile "jobmatch/internal/usecase/profile"
)

type ProfileRequest struct {
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	YearsOfExperience int       `json:"years_of_experience"`
	Skills            SkillList `json:"skills"`
	PreferredJobType  string    `json:"preferred_job_type"`
}

func (r ProfileRequest) Input() ucprofile.UpsertInput {
	return ucprofile.UpsertInput{
		Name:              r.Name,
		Location:          r.Location,
		YearsOfExperience: r.YearsOfExperience,
		Skills:            []string(r.Skills),
		PreferredJobType:  r.PreferredJobType,
	}
}
