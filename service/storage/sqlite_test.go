package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	svc, err := NewService(dbPath)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestSaveBumpAndQueries(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	bumpID, err := svc.SaveBump(ctx, SaveBumpInput{
		BumpUUID:   "bump-1",
		Path:       "Cargo.toml",
		Field:      "version",
		Component:  "patch",
		Line:       3,
		OldVersion: "0.1.4",
		NewVersion: "0.1.5",
		Version:    "1.0.0",
	})
	if err != nil {
		t.Fatalf("SaveBump failed: %v", err)
	}
	if bumpID <= 0 {
		t.Fatalf("expected positive bumpID, got %d", bumpID)
	}

	recent, err := svc.GetRecentBumps("Cargo.toml", 10)
	if err != nil {
		t.Fatalf("GetRecentBumps failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent bump, got %d", len(recent))
	}
	if recent[0].OldVersion != "0.1.4" || recent[0].NewVersion != "0.1.5" || recent[0].Line != 3 {
		t.Fatalf("unexpected recent bump values: %+v", recent[0])
	}
	if recent[0].BumpTimestamp.IsZero() {
		t.Fatalf("expected bump timestamp to be set: %+v", recent[0])
	}

	bump, err := svc.GetBump(bumpID)
	if err != nil {
		t.Fatalf("GetBump failed: %v", err)
	}
	if bump.BumpUUID != "bump-1" || bump.Component != "patch" || bump.Version != "1.0.0" {
		t.Fatalf("unexpected bump values: %+v", bump)
	}
}

func TestSaveBumpValidation(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if _, err := svc.SaveBump(ctx, SaveBumpInput{OldVersion: "1.0.0", NewVersion: "1.0.1"}); err == nil {
		t.Fatal("expected error for missing path")
	}
	if _, err := svc.SaveBump(ctx, SaveBumpInput{Path: "Cargo.toml"}); err == nil {
		t.Fatal("expected error for missing versions")
	}

	bumpID, err := svc.SaveBump(ctx, SaveBumpInput{
		Path:       "Cargo.toml",
		Component:  "patch",
		Line:       1,
		OldVersion: "1.0.0",
		NewVersion: "1.0.1",
	})
	if err != nil {
		t.Fatalf("SaveBump failed: %v", err)
	}

	bump, err := svc.GetBump(bumpID)
	if err != nil {
		t.Fatalf("GetBump failed: %v", err)
	}
	if bump.Field != "version" {
		t.Fatalf("expected field default, got %q", bump.Field)
	}
	if bump.BumpUUID == "" {
		t.Fatal("expected generated bump uuid")
	}
}

func TestGetRecentBumpsFiltersAndOrders(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	for i, in := range []SaveBumpInput{
		{Path: "Cargo.toml", Field: "version", Component: "patch", Line: 3, OldVersion: "0.1.0", NewVersion: "0.1.1"},
		{Path: "Cargo.toml", Field: "version", Component: "patch", Line: 3, OldVersion: "0.1.1", NewVersion: "0.1.2"},
		{Path: "other/Cargo.toml", Field: "version", Component: "minor", Line: 5, OldVersion: "2.3.0", NewVersion: "2.4.0"},
	} {
		if _, err := svc.SaveBump(ctx, in); err != nil {
			t.Fatalf("SaveBump #%d failed: %v", i+1, err)
		}
	}

	all, err := svc.GetRecentBumps("", 10)
	if err != nil {
		t.Fatalf("GetRecentBumps (all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 bumps, got %d", len(all))
	}
	if all[0].Path != "other/Cargo.toml" {
		t.Fatalf("expected newest bump first, got %+v", all[0])
	}

	filtered, err := svc.GetRecentBumps("Cargo.toml", 10)
	if err != nil {
		t.Fatalf("GetRecentBumps (filtered) failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 filtered bumps, got %d", len(filtered))
	}
	if filtered[0].NewVersion != "0.1.2" || filtered[1].NewVersion != "0.1.1" {
		t.Fatalf("unexpected filtered order: %+v", filtered)
	}

	limited, err := svc.GetRecentBumps("", 1)
	if err != nil {
		t.Fatalf("GetRecentBumps (limited) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 limited bump, got %d", len(limited))
	}
}

func TestGetBumpNotFound(t *testing.T) {
	svc := newTestStorage(t)

	if _, err := svc.GetBump(42); err == nil {
		t.Fatal("expected error for unknown bump id")
	}
}

func TestMaintenanceCommands(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if err := svc.Vacuum(ctx); err != nil {
		t.Fatalf("Vacuum failed: %v", err)
	}
	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}
	if _, err := svc.PurgeOlderThan(ctx, 0); err == nil {
		t.Fatal("expected error for invalid purge days")
	}
	purged, err := svc.PurgeOlderThan(ctx, 90)
	if err != nil {
		t.Fatalf("PurgeOlderThan failed: %v", err)
	}
	if purged != 0 {
		t.Fatalf("expected no purged rows on empty db, got %d", purged)
	}
}
