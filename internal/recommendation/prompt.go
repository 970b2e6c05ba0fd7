package recommendation

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"
)

// descriptionLimit bounds prompt size. Only the description is shortened.
const descriptionLimit = 100

type promptJob struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	JobType     string   `json:"jobType"`
}

const promptTemplate = `You rank job postings for a candidate. Pick the %d best matches for the candidate below from the available jobs.

Candidate:
- Name: %s
- Location: %s
- Years of experience: %d
- Skills: %s
- Preferred job type: %s

Available jobs (JSON):
%s

Respond with a JSON array of exactly %d objects and nothing else, using this shape:
[
  {
    "id": "<job id copied from the list above>",
    "title": "<job title>",
    "company": "<company name>",
    "matchScore": 85,
    "matchReasons": ["<reason>", "<reason>", "<reason>"]
  }
]

matchScore is an integer from 0 to 100 describing how well the candidate fits the job.
matchReasons holds 2 or 3 short, specific reasons for the match.
Output only the JSON array. Do not add commentary or code fences.`

// BuildPrompt renders the ranking instruction for p over jobs.
func BuildPrompt(p profile.Profile, jobs []job.Job) (string, error) {
	items := make([]promptJob, 0, len(jobs))
	for _, j := range jobs {
		skills := j.Skills
		if skills == nil {
			skills = []string{}
		}
		items = append(items, promptJob{
			ID:          j.ID.String(),
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Description: truncateRunes(j.Description, descriptionLimit),
			Skills:      skills,
			JobType:     string(j.JobType),
		})
	}

	catalog, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal job catalog: %w", err)
	}

	return fmt.Sprintf(promptTemplate,
		MaxResults,
		p.Name,
		p.Location,
		p.YearsOfExperience,
		strings.Join(p.Skills, ", "),
		p.PreferredJobType,
		string(catalog),
		MaxResults,
	), nil
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
