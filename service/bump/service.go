// Package bump rewrites version declarations inside manifest content.
//
// The transformation is pure: content in, content out, with log events
// collected instead of printed. File reads and writes live in the
// manifest service, so this logic is testable without a filesystem.
package bump

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/scanner"
	"github.com/bumpver/bumpver/service/semver"
)

// ErrNoVersionLine reports content where no line matched the line
// expression. The file is left untouched in that case.
var ErrNoVersionLine = errors.New("no version declaration matched")

// NewService creates a bump service. component selects which triplet
// component is incremented; explicit, when non-empty, replaces matched
// versions verbatim instead of incrementing.
func NewService(scannerSvc scanner.Service, semverSvc semver.Service, component, explicit string) (Service, error) {
	switch component {
	case semver.ComponentMajor, semver.ComponentMinor, semver.ComponentPatch:
	default:
		return nil, fmt.Errorf("unsupported component: %s", component)
	}
	if explicit != "" {
		if err := semverSvc.ValidateExplicit(explicit); err != nil {
			return nil, err
		}
	}
	return &service{
		scanner:   scannerSvc,
		semver:    semverSvc,
		component: component,
		explicit:  explicit,
	}, nil
}

// Apply scans content line by line and rewrites every matched version
// declaration. Candidate lines that fail a pattern produce a NOT MATCHED
// event; an unparsable matched value aborts with the offending line in
// the error, leaving the returned content empty.
func (s *service) Apply(content string) (Result, error) {
	lines := splitKeepEnds(content)
	res := Result{}
	matched := 0

	for i := range lines {
		text := lines[i].text
		if !s.scanner.IsCandidate(text) {
			continue
		}

		captured, ok := s.scanner.MatchLine(text)
		if !ok {
			res.addEvent("NOT MATCHED for expression [%s].", s.scanner.Pattern())
			continue
		}
		res.addEvent("MATCHED for expression [%s].", s.scanner.Pattern())
		matched++

		current, err := s.semver.Find(captured)
		if err != nil {
			res.addEvent("NOT MATCHED for expression [%s].", semver.Pattern)
			return res, fmt.Errorf("failed to parse version value on line %d [%s]: %w", i+1, text, err)
		}
		res.addEvent("MATCHED for expression [%s].", semver.Pattern)

		next := s.explicit
		if next == "" {
			bumped, err := s.semver.Bump(current, s.component)
			if err != nil {
				return res, err
			}
			next = s.semver.Format(bumped)
		}

		newText := strings.Replace(text, quote(captured), quote(next), 1)
		res.addEvent("AFFECTED LINE:\n        SRC [%s]\n        NEW [%s]", text, newText)
		res.Changes = append(res.Changes, model.LineChange{
			Line:       i + 1,
			Src:        text,
			New:        newText,
			OldVersion: captured,
			NewVersion: next,
		})
		lines[i].text = newText
	}

	if matched == 0 {
		return res, ErrNoVersionLine
	}

	res.NewContent = joinLines(lines)
	res.Changed = res.NewContent != content
	return res, nil
}

func quote(v string) string {
	return `"` + v + `"`
}

func (r *Result) addEvent(format string, a ...any) {
	r.Events = append(r.Events, model.Event{Message: fmt.Sprintf(format, a...)})
}
