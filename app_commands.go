package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bumpver/bumpver/service/storage"
	"github.com/bumpver/bumpver/shared/report"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 30, "Purge bumps older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: bumpver db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "reindex":
		return store.Reindex(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d bumps\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	pathFilter := fs.String("path", "", "Manifest path filter")
	limit := fs.Int("limit", 20, "Number of rows to list")
	exportJSON := fs.String("export-json", "", "Write the listed bumps to a JSON file")
	exportCSV := fs.String("export-csv", "", "Write the listed bumps to a CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: bumpver history <list|show>")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "list":
		bumps, err := store.GetRecentBumps(*pathFilter, *limit)
		if err != nil {
			return err
		}
		report.DrawHistoryTable(bumps)
		return exportHistory(bumps, *exportJSON, *exportCSV)
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: bumpver history show <bump-id>")
		}
		bumpID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return err
		}
		bump, err := store.GetBump(bumpID)
		if err != nil {
			return err
		}
		report.DrawBumpDetail(bump)
		return nil
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}

func exportHistory(bumps []storage.BumpSummary, jsonPath, csvPath string) error {
	if strings.TrimSpace(jsonPath) != "" {
		b, err := json.MarshalIndent(bumps, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
			return err
		}
	}
	if strings.TrimSpace(csvPath) != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w := csv.NewWriter(f)
		defer w.Flush()
		_ = w.Write([]string{"bump_id", "timestamp", "path", "field", "component", "line", "old_version", "new_version"})
		for _, b := range bumps {
			_ = w.Write([]string{
				strconv.FormatInt(b.BumpID, 10),
				b.BumpTimestamp.Format("2006-01-02 15:04:05"),
				b.Path,
				b.Field,
				b.Component,
				strconv.Itoa(b.Line),
				b.OldVersion,
				b.NewVersion,
			})
		}
	}
	return nil
}
