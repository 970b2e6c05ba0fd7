package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short", in: "  hello ", limit: 10, want: "hello"},
		{name: "exact", in: "abcde", limit: 5, want: "abcde"},
		{name: "cut", in: "abcdef", limit: 3, want: "abc..."},
		{name: "multibyte", in: "привет мир", limit: 6, want: "привет..."},
		{name: "zero limit", in: "abc", limit: 0, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.in, tc.limit); got != tc.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestNewBuildsLogger(t *testing.T) {
	l, err := New(true, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level enabled")
	}
	if strings.TrimSpace(l.Name()) != "" {
		t.Fatalf("expected unnamed root logger, got %q", l.Name())
	}
}
