package scanner

import "regexp"

type service struct {
	field string
	re    *regexp.Regexp
}

// Service matches manifest lines declaring the configured field.
type Service interface {
	IsCandidate(line string) bool
	MatchLine(line string) (string, bool)
	Pattern() string
}
