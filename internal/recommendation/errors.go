package recommendation

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoJobsAvailable = errors.New("no jobs available")

	ErrEmptyRanking  = errors.New("ranking contains no entries")
	ErrUnknownJob    = errors.New("ranking references unknown job")
	ErrNoMatchers    = errors.New("no matchers configured")
	ErrEmptyResponse = errors.New("generator returned no text")
)

// Kind classifies why a primary matcher could not produce a ranking.
type Kind string

const (
	KindExternalService Kind = "external_service"
	KindResponseParse   Kind = "response_parse"
	KindReference       Kind = "reference"
)

// MatchError is returned by PrimaryMatcher. Engine always recovers from it by
// moving on to the next matcher.
type MatchError struct {
	Kind    Kind
	Matcher string
	Err     error
}

func (e *MatchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Matcher, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Matcher, e.Kind, e.Err)
}

func (e *MatchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IsExternalService(err error) bool { return hasKind(err, KindExternalService) }
func IsResponseParse(err error) bool   { return hasKind(err, KindResponseParse) }
func IsReference(err error) bool       { return hasKind(err, KindReference) }

func hasKind(err error, k Kind) bool {
	var me *MatchError
	if !errors.As(err, &me) {
		return false
	}
	return me.Kind == k
}

// ServerError means no matcher could complete, or the data layer failed.
// Cause keeps the original failure for diagnostics.
type ServerError struct {
	Cause error
}

func (e *ServerError) Error() string {
	if e == nil || e.Cause == nil {
		return "recommendation failed"
	}
	return "recommendation failed: " + e.Cause.Error()
}

func (e *ServerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
