package recommendation

import (
	"context"
	"strings"
	"testing"

	"jobmatch/internal/database/seeder"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog() []job.Job {
	jobs := seeder.SeedJobs()
	for i := range jobs {
		jobs[i].ID = uuid.New()
	}
	return jobs
}

func TestScore_FrontendProfileRanksFrontendFirst(t *testing.T) {
	p := profile.Profile{Skills: []string{"React", "JavaScript"}, PreferredJobType: profile.PreferRemote}

	got := Score(p, seedCatalog())

	require.Len(t, got, 3)
	assert.Equal(t, "Frontend Developer", got[0].Title)
	assert.Equal(t, 99, got[0].MatchScore)
	assert.True(t, got[0].UsingFallback)
	assert.Equal(t, "Matches 2 of your skills: React, JavaScript", got[0].MatchReasons[0])
	assert.Equal(t, "Job type (remote) matches your preference", got[0].MatchReasons[1])
	assert.Equal(t, "Located in San Francisco, CA", got[0].MatchReasons[2])

	assert.Equal(t, "Full Stack Developer", got[1].Title)
	assert.Equal(t, 70, got[1].MatchScore)
	assert.Equal(t, "This opportunity offers a different work arrangement", got[1].MatchReasons[1])

	assert.Equal(t, "Mobile Developer", got[2].Title)
	assert.Equal(t, 65, got[2].MatchScore)
}

func TestScore_NoCommonSkillsOnlyJobTypeCounts(t *testing.T) {
	p := profile.Profile{Skills: []string{"COBOL", "Fortran"}, PreferredJobType: profile.PreferOnsite}

	got := Score(p, seedCatalog())

	require.Len(t, got, 3)
	for _, r := range got {
		assert.Contains(t, []int{0, 30}, r.MatchScore, r.Title)
		assert.Equal(t, "The role may help you develop new skills", r.MatchReasons[0])
	}
	// onsite jobs in catalog order: Backend, DevOps, Product Manager
	assert.Equal(t, "Backend Developer", got[0].Title)
	assert.Equal(t, "DevOps Engineer", got[1].Title)
	assert.Equal(t, "Product Manager", got[2].Title)
}

func TestScore_AnyPreferenceAlwaysMatchesJobType(t *testing.T) {
	p := profile.Profile{Skills: []string{"Go"}, PreferredJobType: profile.PreferAny}

	for _, r := range Score(p, seedCatalog()) {
		assert.True(t, strings.HasSuffix(r.MatchReasons[1], "matches your preference"), r.MatchReasons[1])
		assert.Equal(t, 30, r.MatchScore)
	}
}

func TestScore_SortedBoundedAndCapped(t *testing.T) {
	profiles := []profile.Profile{
		{Skills: []string{"React"}, PreferredJobType: profile.PreferRemote},
		{Skills: []string{"Python", "SQL", "Statistics"}, PreferredJobType: profile.PreferAny},
		{Skills: []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Linux", "Terraform"}, PreferredJobType: profile.PreferOnsite},
		{Skills: []string{"react", "javascript"}, PreferredJobType: profile.PreferRemote},
	}

	for _, p := range profiles {
		got := Score(p, seedCatalog())
		require.LessOrEqual(t, len(got), MaxResults)
		for i, r := range got {
			assert.GreaterOrEqual(t, r.MatchScore, 0)
			assert.LessOrEqual(t, r.MatchScore, 99)
			assert.True(t, r.UsingFallback)
			assert.Len(t, r.MatchReasons, 3)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].MatchScore, r.MatchScore)
			}
		}
	}
}

func TestScore_CaseSensitiveSkills(t *testing.T) {
	p := profile.Profile{Skills: []string{"react"}, PreferredJobType: profile.PreferOnsite}
	jobs := []job.Job{{ID: uuid.New(), Title: "FE", Skills: []string{"React"}, JobType: job.TypeRemote}}

	got := Score(p, jobs)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].MatchScore)
}

func TestScore_RepeatedSkillsCountOnce(t *testing.T) {
	p := profile.Profile{Skills: []string{"React", "Python", "React"}, PreferredJobType: profile.PreferRemote}
	jobs := []job.Job{{
		ID:       uuid.New(),
		Title:    "Web Engineer",
		Location: "Remote",
		Skills:   []string{"React", "React", "Go"},
		JobType:  job.TypeHybrid,
	}}

	got := Score(p, jobs)

	require.Len(t, got, 1)
	assert.Equal(t, 35, got[0].MatchScore)
	assert.Equal(t, "Matches 1 of your skills: React", got[0].MatchReasons[0])
}

func TestScore_TiesKeepCatalogOrder(t *testing.T) {
	jobs := []job.Job{
		{ID: uuid.New(), Title: "A", Skills: []string{"Go"}, JobType: job.TypeOnsite},
		{ID: uuid.New(), Title: "B", Skills: []string{"Go"}, JobType: job.TypeOnsite},
		{ID: uuid.New(), Title: "C", Skills: []string{"Go"}, JobType: job.TypeOnsite},
		{ID: uuid.New(), Title: "D", Skills: []string{"Go"}, JobType: job.TypeOnsite},
	}
	p := profile.Profile{Skills: []string{"Go"}, PreferredJobType: profile.PreferOnsite}

	got := Score(p, jobs)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].Title, got[1].Title, got[2].Title})
	assert.Equal(t, "A", jobs[0].Title, "input must not be reordered")
}

func TestScore_RoundsToNearest(t *testing.T) {
	// 1 of 3 skills: 0.7 * 33.33 = 23.33 -> 23
	p := profile.Profile{Skills: []string{"Go", "Rust", "Zig"}, PreferredJobType: profile.PreferRemote}
	jobs := []job.Job{{ID: uuid.New(), Skills: []string{"Go"}, JobType: job.TypeHybrid}}
	require.Equal(t, 23, Score(p, jobs)[0].MatchScore)

	// 2 of 3 skills + type: 0.7 * 66.67 + 30 = 76.67 -> 77
	jobs[0].Skills = []string{"Rust", "Go"}
	jobs[0].JobType = job.TypeRemote
	got := Score(p, jobs)[0]
	require.Equal(t, 77, got.MatchScore)
	require.Equal(t, "Matches 2 of your skills: Rust, Go", got.MatchReasons[0])
}

func TestScore_EmptyInputs(t *testing.T) {
	assert.Empty(t, Score(profile.Profile{Skills: []string{"Go"}}, nil))

	got := Score(profile.Profile{PreferredJobType: profile.PreferAny}, []job.Job{{ID: uuid.New(), Skills: []string{"Go"}, JobType: job.TypeHybrid}})
	require.Len(t, got, 1)
	assert.Equal(t, 30, got[0].MatchScore)
}

func TestScore_Deterministic(t *testing.T) {
	jobs := seedCatalog()
	p := profile.Profile{Skills: []string{"JavaScript", "CSS", "Node.js"}, PreferredJobType: profile.PreferAny}

	first := Score(p, jobs)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(p, jobs))
	}
}

func TestDeterministicMatcher_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDeterministicMatcher().Rank(ctx, profile.Profile{}, seedCatalog())
	require.ErrorIs(t, err, context.Canceled)
}
