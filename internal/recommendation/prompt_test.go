package recommendation

import (
	"encoding/json"
	"strings"
	"testing"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_EmbedsProfileAndCatalog(t *testing.T) {
	p := profile.Profile{
		Name:              "Ada",
		Location:          "London",
		YearsOfExperience: 7,
		Skills:            []string{"Go", "PostgreSQL"},
		PreferredJobType:  profile.PreferRemote,
	}
	long := strings.Repeat("é", 150)
	j := job.Job{ID: uuid.New(), Title: "Backend", Company: "Acme", Location: "Remote", Description: long, Skills: []string{"Go"}, JobType: job.TypeRemote}

	prompt, err := BuildPrompt(p, []job.Job{j})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Name: Ada")
	assert.Contains(t, prompt, "- Location: London")
	assert.Contains(t, prompt, "- Years of experience: 7")
	assert.Contains(t, prompt, "- Skills: Go, PostgreSQL")
	assert.Contains(t, prompt, "- Preferred job type: remote")
	assert.Contains(t, prompt, "exactly 3 objects")

	start := strings.Index(prompt, "[{")
	end := strings.Index(prompt, "}]")
	require.True(t, start >= 0 && end > start)

	var items []promptJob
	require.NoError(t, json.Unmarshal([]byte(prompt[start:end+2]), &items))
	require.Len(t, items, 1)
	assert.Equal(t, j.ID.String(), items[0].ID)
	assert.Equal(t, []string{"Go"}, items[0].Skills)
	assert.Equal(t, "remote", items[0].JobType)
	assert.Equal(t, 100, len([]rune(items[0].Description)))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 100))
	assert.Equal(t, "ab", truncateRunes("abc", 2))
	assert.Equal(t, "", truncateRunes("abc", 0))
}
