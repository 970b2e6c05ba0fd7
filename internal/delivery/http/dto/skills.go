package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var errSkillsType = errors.New("skills must be an array of strings or a comma separated string")

// SkillList decodes either ["Go", "SQL"] or "Go, SQL".
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}

	switch b[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return errSkillsType
		}
		*s = items
		return nil
	case '"':
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return errSkillsType
		}
		*s = strings.Split(raw, ",")
		return nil
	default:
		return errSkillsType
	}
}
