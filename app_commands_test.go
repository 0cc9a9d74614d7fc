package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bumpver/bumpver/service/storage"
)

func TestExportHistoryWritesJSONAndCSV(t *testing.T) {
	tmp := t.TempDir()
	jsonPath := filepath.Join(tmp, "history.json")
	csvPath := filepath.Join(tmp, "history.csv")

	bumps := []storage.BumpSummary{
		{BumpID: 2, BumpUUID: "uuid-2", Path: "Cargo.toml", Field: "version", Component: "patch", Line: 3, OldVersion: "0.1.4", NewVersion: "0.1.5", BumpTimestamp: time.Now()},
		{BumpID: 1, BumpUUID: "uuid-1", Path: "other.toml", Field: "version", Component: "minor", Line: 1, OldVersion: "1.2.0", NewVersion: "1.3.0", BumpTimestamp: time.Now().Add(-time.Hour)},
	}

	if err := exportHistory(bumps, jsonPath, csvPath); err != nil {
		t.Fatalf("exportHistory failed: %v", err)
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read JSON export: %v", err)
	}
	var decoded []storage.BumpSummary
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("JSON export does not parse: %v", err)
	}
	if len(decoded) != 2 || decoded[0].NewVersion != "0.1.5" {
		t.Fatalf("unexpected JSON export content: %+v", decoded)
	}

	csvData, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("failed to read CSV export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "bump_id,") {
		t.Fatalf("unexpected CSV header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "0.1.5") {
		t.Fatalf("unexpected CSV first row: %s", lines[1])
	}
}

func TestExportHistoryNoPathsIsNoop(t *testing.T) {
	if err := exportHistory(nil, "", ""); err != nil {
		t.Fatalf("exportHistory with no paths failed: %v", err)
	}
}

func TestRunStorageCommandUnsupported(t *testing.T) {
	if err := runStorageCommand("dashboard", nil); err == nil {
		t.Fatalf("expected error for unsupported command")
	}
}

func TestRunDBCommandUsage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	err := runDBCommand([]string{"--db-path", dbPath})
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("expected usage error, got: %v", err)
	}
}

func TestRunDBCommandVacuumAndPurge(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	if err := runDBCommand([]string{"--db-path", dbPath, "vacuum"}); err != nil {
		t.Fatalf("vacuum failed: %v", err)
	}
	if err := runDBCommand([]string{"--db-path", dbPath, "purge", "--older-than", "7"}); err != nil {
		t.Fatalf("purge failed: %v", err)
	}
}

func TestRunHistoryCommandList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	exportPath := filepath.Join(t.TempDir(), "out.json")

	err := runHistoryCommand([]string{"--db-path", dbPath, "list", "--export-json", exportPath})
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}
