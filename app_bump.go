package main

import (
	"fmt"

	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/bump"
	"github.com/bumpver/bumpver/service/manifest"
	"github.com/bumpver/bumpver/service/orchestrator"
	"github.com/bumpver/bumpver/service/output"
	"github.com/bumpver/bumpver/service/scanner"
	"github.com/bumpver/bumpver/service/semver"
	"github.com/bumpver/bumpver/service/storage"
	"github.com/bumpver/bumpver/shared/logging"
	"github.com/bumpver/bumpver/shared/spinner"
)

// runBump wires the bump pipeline and hands control to the orchestrator.
// Informational log lines are suppressed in json mode so stdout stays a
// single machine-readable document.
func runBump(flags model.Flags, versionInfo model.VersionInfo, storageService storage.Service) error {
	scannerService, err := scanner.NewService(flags.Field)
	if err != nil {
		return fmt.Errorf("failed to build line scanner: %w", err)
	}

	semverService := semver.NewService()

	bumpService, err := bump.NewService(scannerService, semverService, flags.Component, flags.Set)
	if err != nil {
		return err
	}

	manifestService := manifest.NewService()

	outputService, err := output.NewService(flags.Output, versionInfo.Version)
	if err != nil {
		return err
	}

	logger := logging.New(flags.Quiet || flags.Output == "json")

	if flags.Output == "table" {
		spinner.StartSpinner()
		defer spinner.StopSpinner()
	}

	orchestratorService := orchestrator.NewService(
		manifestService,
		bumpService,
		outputService,
		storageService,
		logger,
		versionInfo,
	)

	return orchestratorService.Orchestrate(flags)
}
