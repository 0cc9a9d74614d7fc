package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.bumpver/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveBump(ctx context.Context, input SaveBumpInput) (int64, error) {
	if input.Path == "" {
		return 0, errors.New("path is required")
	}
	if input.OldVersion == "" || input.NewVersion == "" {
		return 0, errors.New("old and new versions are required")
	}
	if input.Field == "" {
		input.Field = "version"
	}
	if input.BumpUUID == "" {
		input.BumpUUID = uuid.NewString()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bumps (
			bump_uuid, path, field, component, line,
			old_version, new_version, cli_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, input.BumpUUID, input.Path, input.Field, input.Component, input.Line,
		input.OldVersion, input.NewVersion, input.Version)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *service) GetRecentBumps(path string, limit int) ([]BumpSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT bump_id, bump_uuid, path, field, component, line,
			old_version, new_version, bump_timestamp, cli_version
		FROM bumps
	`
	args := []any{}
	if path != "" {
		query += " WHERE path=?"
		args = append(args, path)
	}
	query += " ORDER BY bump_timestamp DESC, bump_id DESC LIMIT ?"
	args = append(args, limit)
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bumps := []BumpSummary{}
	for rows.Next() {
		var b BumpSummary
		if err := rows.Scan(&b.BumpID, &b.BumpUUID, &b.Path, &b.Field, &b.Component, &b.Line,
			&b.OldVersion, &b.NewVersion, &b.BumpTimestamp, &b.Version); err != nil {
			return nil, err
		}
		bumps = append(bumps, b)
	}
	return bumps, rows.Err()
}

func (s *service) GetBump(bumpID int64) (*BumpSummary, error) {
	row := s.db.QueryRow(`
		SELECT bump_id, bump_uuid, path, field, component, line,
			old_version, new_version, bump_timestamp, cli_version
		FROM bumps WHERE bump_id=?
	`, bumpID)

	var b BumpSummary
	if err := row.Scan(&b.BumpID, &b.BumpUUID, &b.Path, &b.Field, &b.Component, &b.Line,
		&b.OldVersion, &b.NewVersion, &b.BumpTimestamp, &b.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bump %d not found", bumpID)
		}
		return nil, err
	}
	return &b, nil
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM bumps WHERE bump_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
