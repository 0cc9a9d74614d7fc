// Package scanner locates field declaration lines in manifest content.
package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// NewService compiles the line expression for the given field name. The
// default field "version" yields `\s*version\s*=\s*"(.*)"`.
func NewService(field string) (Service, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, fmt.Errorf("field name is empty")
	}

	pattern := `\s*` + regexp.QuoteMeta(field) + `\s*=\s*"(.*)"`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile line expression for field %q: %w", field, err)
	}

	return &service{field: field, re: re}, nil
}

// IsCandidate reports whether the trimmed line starts with the field name.
// Non-candidate lines are skipped without logging.
func (s *service) IsCandidate(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), s.field)
}

// MatchLine applies the line expression and returns the captured quoted
// value. The capture is greedy: when a line holds several quoted strings
// it spans from the first opening quote to the last closing quote.
func (s *service) MatchLine(line string) (string, bool) {
	m := s.re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Pattern returns the source text of the line expression as it appears
// in log records.
func (s *service) Pattern() string {
	return s.re.String()
}
