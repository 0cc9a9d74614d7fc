package bump

import (
	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/scanner"
	"github.com/bumpver/bumpver/service/semver"
)

type service struct {
	scanner   scanner.Service
	semver    semver.Service
	component string
	explicit  string
}

// Result carries the rewritten content plus everything observable about
// the transformation.
type Result struct {
	NewContent string
	Changed    bool
	Changes    []model.LineChange
	Events     []model.Event
}

// Service transforms manifest content in memory.
type Service interface {
	Apply(content string) (Result, error)
}
