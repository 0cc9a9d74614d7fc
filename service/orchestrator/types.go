package orchestrator

import (
	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/bump"
	"github.com/bumpver/bumpver/service/manifest"
	"github.com/bumpver/bumpver/service/output"
	"github.com/bumpver/bumpver/service/storage"
	"github.com/bumpver/bumpver/shared/logging"
)

type service struct {
	manifestService manifest.Service
	bumpService     bump.Service
	outputService   output.Service
	storageService  storage.Service
	logger          logging.Logger
	versionInfo     model.VersionInfo
}

// Service is the interface for orchestrator service.
type Service interface {
	Orchestrate(flags model.Flags) error
}

// fileOutcome pairs one target's result with its processing error.
type fileOutcome struct {
	result model.FileResult
	err    error
}
