package recommendation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// RankedEntry is one element of the array the generator is asked to emit.
type RankedEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
}

// Ranking is the outcome of reading generator text. Exactly one of Entries
// (Malformed == false) or Err (Malformed == true) is meaningful; Raw always
// holds the original text.
type Ranking struct {
	Entries   []RankedEntry
	Raw       string
	Malformed bool
	Err       error
}

var arrayOfObjects = regexp.MustCompile(`\[\s*\{[\s\S]*\}\s*\]`)

// ParseRanking locates the outermost array of objects in raw and decodes it.
// The scan is permissive, the decoding is not.
func ParseRanking(raw string) Ranking {
	candidate := arrayOfObjects.FindString(raw)
	if candidate == "" {
		candidate = strings.TrimSpace(raw)
	}

	var entries []RankedEntry
	if err := json.Unmarshal([]byte(candidate), &entries); err != nil {
		return malformed(raw, fmt.Errorf("decode ranking: %w", err))
	}
	if len(entries) == 0 {
		return malformed(raw, ErrEmptyRanking)
	}

	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		e := &entries[i]
		e.ID = strings.TrimSpace(e.ID)
		if e.ID == "" {
			return malformed(raw, fmt.Errorf("entry %d: missing id", i))
		}
		if _, dup := seen[e.ID]; dup {
			return malformed(raw, fmt.Errorf("entry %d: duplicate id %q", i, e.ID))
		}
		seen[e.ID] = struct{}{}
		if e.MatchScore < 0 || e.MatchScore > 100 {
			return malformed(raw, fmt.Errorf("entry %d: matchScore %d out of range", i, e.MatchScore))
		}
	}

	return Ranking{Entries: entries, Raw: raw}
}

func malformed(raw string, err error) Ranking {
	if err == nil {
		err = errors.New("malformed ranking")
	}
	return Ranking{Raw: raw, Malformed: true, Err: err}
}
