// Package orchestrator coordinates bump runs across manifest files.
package orchestrator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/bump"
	"github.com/bumpver/bumpver/service/manifest"
	"github.com/bumpver/bumpver/service/output"
	"github.com/bumpver/bumpver/service/storage"
	"github.com/bumpver/bumpver/shared/logging"
)

// NewService creates a new orchestrator service. storageService may be
// nil when history recording is disabled.
func NewService(
	manifestService manifest.Service,
	bumpService bump.Service,
	outputService output.Service,
	storageService storage.Service,
	logger logging.Logger,
	versionInfo model.VersionInfo,
) Service {
	return &service{
		manifestService: manifestService,
		bumpService:     bumpService,
		outputService:   outputService,
		storageService:  storageService,
		logger:          logger,
		versionInfo:     versionInfo,
	}
}

func (s *service) Orchestrate(flags model.Flags) error {
	if flags.Version {
		return s.versionWorkflow()
	}

	return s.bumpWorkflow(flags)
}

func (s *service) versionWorkflow() error {
	s.outputService.StopSpinner()

	fmt.Printf("bumpver version %s\n", s.versionInfo.Version)
	fmt.Printf("commit: %s\n", s.versionInfo.Commit)
	fmt.Printf("built at: %s\n", s.versionInfo.Date)

	return nil
}

func (s *service) bumpWorkflow(flags model.Flags) error {
	targets := dedupeTargets(append([]string{flags.Path}, flags.Files...))
	if len(targets) == 0 {
		return fmt.Errorf("no manifest file given")
	}

	outcomes := make([]fileOutcome, len(targets))

	g := new(errgroup.Group)
	for i, target := range targets {
		g.Go(func() error {
			result, err := s.processFile(target, flags)
			outcomes[i] = fileOutcome{result: result, err: err}
			return err
		})
	}
	// Per-file errors are reported below in input order; the group only
	// carries the first one.
	_ = g.Wait()

	s.outputService.StopSpinner()

	var firstErr error
	results := make([]model.FileResult, 0, len(targets))
	for i, outcome := range outcomes {
		for _, event := range outcome.result.Events {
			s.logger.Infof("%s", event.Message)
		}
		if outcome.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to process %s: %w", targets[i], outcome.err)
			} else {
				s.logger.Errorf("failed to process %s: %v", targets[i], outcome.err)
			}
			continue
		}
		results = append(results, outcome.result)
	}

	if err := s.outputService.Render(results); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	if err := s.persistChanges(context.Background(), flags, results); err != nil {
		return fmt.Errorf("failed to record bump history: %w", err)
	}

	return firstErr
}

// processFile runs the read/transform/write pipeline for one target.
// The returned FileResult carries the collected log events even when
// the transformation failed, so they can be emitted in input order.
func (s *service) processFile(path string, flags model.Flags) (model.FileResult, error) {
	result := model.FileResult{
		Path:   path,
		Field:  flags.Field,
		DryRun: flags.DryRun,
	}

	content, err := s.manifestService.Read(path)
	if err != nil {
		return result, err
	}

	bumpResult, err := s.bumpService.Apply(content)
	result.Events = bumpResult.Events
	if err != nil {
		return result, err
	}

	result.Changed = bumpResult.Changed
	result.Changes = bumpResult.Changes

	if !flags.DryRun && bumpResult.Changed {
		if err := s.manifestService.Write(path, bumpResult.NewContent); err != nil {
			return result, err
		}
	}

	return result, nil
}

func dedupeTargets(input []string) []string {
	out := make([]string, 0, len(input))
	for _, target := range input {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		if !slices.Contains(out, target) {
			out = append(out, target)
		}
	}
	return out
}
