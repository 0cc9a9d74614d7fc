package orchestrator

import (
	"context"

	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/storage"
)

// persistChanges records applied line changes, one row per change.
// Dry runs are never recorded; SaveBump generates the row UUIDs.
func (s *service) persistChanges(ctx context.Context, flags model.Flags, results []model.FileResult) error {
	if s.storageService == nil || flags.DryRun {
		return nil
	}

	for _, result := range results {
		if !result.Changed {
			continue
		}
		for _, change := range result.Changes {
			_, err := s.storageService.SaveBump(ctx, storage.SaveBumpInput{
				Path:       result.Path,
				Field:      result.Field,
				Component:  flags.Component,
				Line:       change.Line,
				OldVersion: change.OldVersion,
				NewVersion: change.NewVersion,
				Version:    s.versionInfo.Version,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}
