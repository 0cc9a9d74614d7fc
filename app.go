// Package main is the entry point for the bumpver application.
package main

import (
	"fmt"
	"os"

	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/config"
	"github.com/bumpver/bumpver/service/flag"
	"github.com/bumpver/bumpver/service/orchestrator"
	"github.com/bumpver/bumpver/service/output"
	"github.com/bumpver/bumpver/service/storage"
	"github.com/bumpver/bumpver/shared/banner"
	"github.com/bumpver/bumpver/shared/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	configService := config.NewService(flagService.Changed)
	fileConfig, err := configService.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags = configService.Merge(flags, fileConfig)

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		outputService, err := output.NewService(flags.Output, version)
		if err != nil {
			return err
		}
		orchestratorService := orchestrator.NewService(
			nil, nil,
			outputService,
			nil,
			logging.New(flags.Quiet),
			versionInfo,
		)
		return orchestratorService.Orchestrate(flags)
	}

	if flags.Output == "table" {
		banner.DrawBannerTitle()
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	return runBump(flags, versionInfo, storageService)
}
