package usecase

import (
	"fmt"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"
	"inkwell/pkg/s3"
)

const cleanupPageSize = 100

// CleanupReport summarizes one cleanup run.
type CleanupReport struct {
	TempSwept    int
	Purged       int
	BlobFailures int
}

type CleanupUseCase interface {
	// Run executes one cleanup pass: first stale TEMP files are marked
	// DELETED, then long-DELETED files are purged for good.
	Run(runAt time.Time) (CleanupReport, error)
}

type cleanupUseCase struct {
	fileRepo  persistent.UploadFileRepository
	blob      s3.Blob
	logger    *logger.Logger
	tempTTL   time.Duration
	retention time.Duration
}

func NewCleanupUseCase(fileRepo persistent.UploadFileRepository, blob s3.Blob, logger *logger.Logger, tempTTL, retention time.Duration) CleanupUseCase {
	return &cleanupUseCase{
		fileRepo:  fileRepo,
		blob:      blob,
		logger:    logger,
		tempTTL:   tempTTL,
		retention: retention,
	}
}

func (uc *cleanupUseCase) Run(runAt time.Time) (CleanupReport, error) {
	var report CleanupReport

	swept, blobFailures, err := uc.sweepTemp(runAt)
	report.TempSwept = swept
	report.BlobFailures += blobFailures
	if err != nil {
		return report, err
	}

	purged, blobFailures, err := uc.purgeDeleted(runAt)
	report.Purged = purged
	report.BlobFailures += blobFailures
	if err != nil {
		return report, err
	}

	uc.logger.Info("Cleanup run finished: %d temp files swept, %d purged, %d blob deletes failed",
		report.TempSwept, report.Purged, report.BlobFailures)
	return report, nil
}

// sweepTemp marks stale TEMP files DELETED. The blob delete is
// best-effort: even when it fails the row still transitions, and the
// purge sweep retries the blob later.
func (uc *cleanupUseCase) sweepTemp(runAt time.Time) (swept, blobFailures int, err error) {
	cutoff := runAt.Add(-uc.tempTTL)
	var afterID int64

	for {
		page, err := uc.fileRepo.ListByStatusCreatedBefore(entity.UploadStatusTemp, cutoff, afterID, cleanupPageSize)
		if err != nil {
			return swept, blobFailures, fmt.Errorf("listing stale temp files: %w", err)
		}
		if len(page) == 0 {
			return swept, blobFailures, nil
		}

		for _, file := range page {
			if err := uc.blob.DeleteFile(file.ObjectName); err != nil {
				uc.logger.Warn("Deleting blob %s of temp file %d: %v", file.ObjectName, file.ID, err)
				blobFailures++
			}
			file.MarkDeleted(runAt)
			afterID = file.ID
		}

		if err := uc.fileRepo.SaveAll(page); err != nil {
			return swept, blobFailures, fmt.Errorf("marking temp files deleted: %w", err)
		}
		swept += len(page)

		if len(page) < cleanupPageSize {
			return swept, blobFailures, nil
		}
	}
}

// purgeDeleted removes rows whose retention has lapsed. A row is only
// dropped once its blob delete succeeds, so a storage outage never
// strands an unreachable blob.
func (uc *cleanupUseCase) purgeDeleted(runAt time.Time) (purged, blobFailures int, err error) {
	cutoff := runAt.Add(-uc.retention)
	var afterID int64

	for {
		page, err := uc.fileRepo.ListByStatusDeletedBefore(entity.UploadStatusDeleted, cutoff, afterID, cleanupPageSize)
		if err != nil {
			return purged, blobFailures, fmt.Errorf("listing purgeable files: %w", err)
		}
		if len(page) == 0 {
			return purged, blobFailures, nil
		}

		purgeable := make([]int64, 0, len(page))
		for _, file := range page {
			afterID = file.ID
			if err := uc.blob.DeleteFile(file.ObjectName); err != nil {
				uc.logger.Warn("Deleting blob %s of file %d: %v", file.ObjectName, file.ID, err)
				blobFailures++
				continue
			}
			purgeable = append(purgeable, file.ID)
		}

		if len(purgeable) > 0 {
			if err := uc.fileRepo.DeleteByIDs(purgeable); err != nil {
				return purged, blobFailures, fmt.Errorf("purging file rows: %w", err)
			}
			purged += len(purgeable)
		}

		if len(page) < cleanupPageSize {
			return purged, blobFailures, nil
		}
	}
}
