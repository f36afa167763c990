package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
)

// orphanSweeper implements the OrphanSweeper interface
type orphanSweeper struct {
	transactor store.Transactor
	imageStore images.ImageStore
	minAge     time.Duration
	keep       map[string]struct{}
	now        func() time.Time
	logger     logger.Logger
}

// NewOrphanSweeper creates a new instance of OrphanSweeper. Files younger than minAge
// are never considered orphans because their upload may still be in flight. Files named
// in keep, such as the fallback image, are never deleted.
func NewOrphanSweeper(transactor store.Transactor, imageStore images.ImageStore, minAge time.Duration, logger logger.Logger, keep ...string) (images.OrphanSweeper, error) {
	kept := make(map[string]struct{}, len(keep))
	for _, name := range keep {
		if name != "" {
			kept[name] = struct{}{}
		}
	}

	return &orphanSweeper{
		transactor: transactor,
		imageStore: imageStore,
		minAge:     minAge,
		keep:       kept,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *orphanSweeper) Sweep(ctx context.Context, dryRun bool) (*images.SweepResult, error) {
	storedFiles, err := s.imageStore.List(ctx)
	if err != nil {
		return nil, err
	}

	// list the store before the table so a row committed in between still protects its file
	referencedNames, err := s.transactor.Repositories().Images.ListFileNames(ctx)
	if err != nil {
		return nil, err
	}
	referenced := make(map[string]struct{}, len(referencedNames))
	for _, name := range referencedNames {
		referenced[name] = struct{}{}
	}

	result := &images.SweepResult{DryRun: dryRun, Scanned: len(storedFiles)}
	cutoff := s.now().Add(-s.minAge)

	for _, file := range storedFiles {
		if _, ok := referenced[file.Name]; ok {
			result.Referenced++
			continue
		}
		if _, ok := s.keep[file.Name]; ok {
			result.Protected++
			continue
		}
		if file.ModTime.After(cutoff) {
			result.Skipped++
			continue
		}

		result.Orphans = append(result.Orphans, file.Name)
		if dryRun {
			continue
		}
		if err := s.imageStore.Delete(ctx, file.Name); err != nil {
			result.Failed++
			s.logger.Warn("Failed to delete orphaned image file", "file", file.Name, "error", err)
			continue
		}
		result.Deleted++
	}

	s.logger.Info("Orphan sweep finished",
		"dryRun", dryRun,
		"scanned", result.Scanned,
		"protected", result.Protected,
		"orphans", len(result.Orphans),
		"deleted", result.Deleted,
		"failed", result.Failed,
	)
	return result, nil
}
