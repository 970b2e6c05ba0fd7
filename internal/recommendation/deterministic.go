package recommendation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"
)

const (
	skillWeight      = 0.7
	jobTypeBonus     = 30.0
	maxFallbackScore = 99
)

// DeterministicMatcher scores jobs locally by skill overlap and job type
// preference. Its scores never reach 100.
type DeterministicMatcher struct{}

func NewDeterministicMatcher() DeterministicMatcher {
	return DeterministicMatcher{}
}

func (DeterministicMatcher) Name() string { return "deterministic" }

func (DeterministicMatcher) Rank(ctx context.Context, p profile.Profile, jobs []job.Job) ([]MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Score(p, jobs), nil
}

// Score ranks jobs for p and returns at most MaxResults results, highest
// score first. Ties keep catalog order. Repeated skills on either side count
// once.
func Score(p profile.Profile, jobs []job.Job) []MatchResult {
	if len(jobs) == 0 {
		return []MatchResult{}
	}

	owned := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		owned[s] = struct{}{}
	}

	scored := make([]MatchResult, 0, len(jobs))
	for _, j := range jobs {
		matching := make([]string, 0, len(j.Skills))
		counted := make(map[string]struct{}, len(j.Skills))
		for _, s := range j.Skills {
			if _, ok := owned[s]; !ok {
				continue
			}
			if _, dup := counted[s]; dup {
				continue
			}
			counted[s] = struct{}{}
			matching = append(matching, s)
		}

		skillScore := 0.0
		if len(owned) > 0 {
			skillScore = 100 * float64(len(matching)) / float64(len(owned))
		}

		typeMatch := jobTypeMatches(p.PreferredJobType, j.JobType)
		total := skillWeight * skillScore
		if typeMatch {
			total += jobTypeBonus
		}
		score := int(math.Round(total))
		if score > maxFallbackScore {
			score = maxFallbackScore
		}

		scored = append(scored, MatchResult{
			JobID:         j.ID,
			Title:         j.Title,
			Company:       j.Company,
			MatchScore:    score,
			MatchReasons:  fallbackReasons(j, matching, typeMatch),
			JobDetails:    j,
			UsingFallback: true,
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].MatchScore > scored[b].MatchScore
	})

	if len(scored) > MaxResults {
		scored = scored[:MaxResults]
	}
	return scored
}

func jobTypeMatches(pref profile.PreferredJobType, jt job.Type) bool {
	if pref == profile.PreferAny {
		return true
	}
	return string(pref) == string(jt)
}

func fallbackReasons(j job.Job, matching []string, typeMatch bool) []string {
	reasons := make([]string, 0, 3)

	if len(matching) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches %d of your skills: %s", len(matching), strings.Join(matching, ", ")))
	} else {
		reasons = append(reasons, "The role may help you develop new skills")
	}

	if typeMatch {
		reasons = append(reasons, fmt.Sprintf("Job type (%s) matches your preference", j.JobType))
	} else {
		reasons = append(reasons, "This opportunity offers a different work arrangement")
	}

	reasons = append(reasons, fmt.Sprintf("Located in %s", j.Location))
	return reasons
}
