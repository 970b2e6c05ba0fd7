package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRanking(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		malformed bool
		ids       []string
	}{
		{
			name: "bare array",
			raw:  `[{"id":"a","title":"T","company":"C","matchScore":90,"matchReasons":["x","y"]}]`,
			ids:  []string{"a"},
		},
		{
			name: "array wrapped in prose and fences",
			raw:  "Here are the matches:\n```json\n[\n  {\"id\": \"a\", \"matchScore\": 80, \"matchReasons\": [\"r1\", \"r2\"]},\n  {\"id\": \"b\", \"matchScore\": 70, \"matchReasons\": [\"r1\", \"r2\"]}\n]\n```\nGood luck!",
			ids:  []string{"a", "b"},
		},
		{
			name:      "no array",
			raw:       "I could not find any matches.",
			malformed: true,
		},
		{
			name:      "truncated array",
			raw:       `[{"id":"a","matchScore":90,"matchReasons":["x"]},{"id":"b","matchSc`,
			malformed: true,
		},
		{
			name:      "empty array",
			raw:       `[]`,
			malformed: true,
		},
		{
			name:      "fractional score",
			raw:       `[{"id":"a","matchScore":85.5,"matchReasons":["x","y"]}]`,
			malformed: true,
		},
		{
			name:      "score out of range",
			raw:       `[{"id":"a","matchScore":120,"matchReasons":["x","y"]}]`,
			malformed: true,
		},
		{
			name:      "missing id",
			raw:       `[{"title":"T","matchScore":50,"matchReasons":["x","y"]}]`,
			malformed: true,
		},
		{
			name:      "duplicate id",
			raw:       `[{"id":"a","matchScore":50},{"id":"a","matchScore":40}]`,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRanking(tt.raw)
			assert.Equal(t, tt.raw, got.Raw)
			if tt.malformed {
				require.True(t, got.Malformed)
				require.Error(t, got.Err)
				assert.Empty(t, got.Entries)
				return
			}
			require.False(t, got.Malformed, "unexpected error: %v", got.Err)
			ids := make([]string, 0, len(got.Entries))
			for _, e := range got.Entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestParseRanking_KeepsScoresAndReasonsVerbatim(t *testing.T) {
	got := ParseRanking(`[{"id":" a ","title":"T","company":"C","matchScore":100,"matchReasons":["Strong React background","Prefers remote"]}]`)

	require.False(t, got.Malformed)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "a", got.Entries[0].ID)
	assert.Equal(t, 100, got.Entries[0].MatchScore)
	assert.Equal(t, []string{"Strong React background", "Prefers remote"}, got.Entries[0].MatchReasons)
}
