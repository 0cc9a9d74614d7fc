package storage

import (
	"context"
	"time"
)

// Service defines persistence and history query operations.
type Service interface {
	SaveBump(ctx context.Context, input SaveBumpInput) (int64, error)
	GetRecentBumps(path string, limit int) ([]BumpSummary, error)
	GetBump(bumpID int64) (*BumpSummary, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveBumpInput is the payload saved for one applied line change.
type SaveBumpInput struct {
	BumpUUID   string
	Path       string
	Field      string
	Component  string
	Line       int
	OldVersion string
	NewVersion string
	Version    string
}

// BumpSummary provides compact bump metadata.
type BumpSummary struct {
	BumpID        int64     `json:"bump_id"`
	BumpUUID      string    `json:"bump_uuid"`
	Path          string    `json:"path"`
	Field         string    `json:"field"`
	Component     string    `json:"component"`
	Line          int       `json:"line"`
	OldVersion    string    `json:"old_version"`
	NewVersion    string    `json:"new_version"`
	BumpTimestamp time.Time `json:"timestamp"`
	Version       string    `json:"cli_version"`
}
