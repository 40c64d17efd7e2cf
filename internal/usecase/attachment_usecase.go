package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/apperror"
	"inkwell/pkg/logger"
	"inkwell/pkg/s3"
)

// fidPattern matches file references embedded in post content as URL
// query markers, e.g. "...?fid=42" or "...&fid=42".
var fidPattern = regexp.MustCompile(`(?i)[?&]fid=(\d+)`)

type AttachmentUseCase interface {
	// ExtractFileIDs returns the file ids referenced in content, in
	// first-occurrence order with duplicates removed.
	ExtractFileIDs(content string) []int64
	// Reconcile aligns the attachment set of a post with its content:
	// newly referenced files become ATTACHED, files no longer
	// referenced become DELETED and their blobs removed.
	Reconcile(userID, postID int64, content string) error
	DetachAllForPost(postID int64) error
}

type attachmentUseCase struct {
	fileRepo persistent.UploadFileRepository
	blob     s3.Blob
	logger   *logger.Logger
	now      func() time.Time
}

func NewAttachmentUseCase(fileRepo persistent.UploadFileRepository, blob s3.Blob, logger *logger.Logger) AttachmentUseCase {
	return &attachmentUseCase{
		fileRepo: fileRepo,
		blob:     blob,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *attachmentUseCase) ExtractFileIDs(content string) []int64 {
	matches := fidPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[int64]struct{}, len(matches))
	ids := make([]int64, 0, len(matches))
	for _, match := range matches {
		id, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (uc *attachmentUseCase) Reconcile(userID, postID int64, content string) error {
	referenced := uc.ExtractFileIDs(content)
	referencedSet := make(map[int64]struct{}, len(referenced))
	for _, id := range referenced {
		referencedSet[id] = struct{}{}
	}

	attached, err := uc.fileRepo.ListByPostIDAndStatus(postID, entity.UploadStatusAttached)
	if err != nil {
		return fmt.Errorf("loading attachments of post %d: %w", postID, err)
	}
	attachedSet := make(map[int64]struct{}, len(attached))
	for _, file := range attached {
		attachedSet[file.ID] = struct{}{}
	}

	var changed []*entity.UploadFile

	for _, id := range referenced {
		if _, already := attachedSet[id]; already {
			continue
		}

		file, err := uc.fileRepo.GetByID(id)
		if err != nil {
			return apperror.ErrFileNotFound
		}
		if file.UserID != userID {
			return apperror.ErrFileForbidden
		}
		if err := file.AttachTo(postID); err != nil {
			// DELETED files stay deleted; a stale reference in content
			// must not resurrect the blob.
			return apperror.ErrFileNotFound
		}
		changed = append(changed, file)
	}

	detachedAt := uc.now()
	for _, file := range attached {
		if _, still := referencedSet[file.ID]; still {
			continue
		}
		file.MarkDeleted(detachedAt)
		uc.deleteBlob(file)
		changed = append(changed, file)
	}

	if len(changed) == 0 {
		return nil
	}
	if err := uc.fileRepo.SaveAll(changed); err != nil {
		return fmt.Errorf("saving attachment changes for post %d: %w", postID, err)
	}
	return nil
}

func (uc *attachmentUseCase) DetachAllForPost(postID int64) error {
	attached, err := uc.fileRepo.ListByPostIDAndStatus(postID, entity.UploadStatusAttached)
	if err != nil {
		return fmt.Errorf("loading attachments of post %d: %w", postID, err)
	}
	if len(attached) == 0 {
		return nil
	}

	deletedAt := uc.now()
	for _, file := range attached {
		file.MarkDeleted(deletedAt)
		uc.deleteBlob(file)
	}
	if err := uc.fileRepo.SaveAll(attached); err != nil {
		return fmt.Errorf("detaching files of post %d: %w", postID, err)
	}
	return nil
}

// deleteBlob removes a detached file's object from storage.
// Best-effort: a storage failure is logged and the row still moves to
// DELETED, leaving the object for the purge sweep.
func (uc *attachmentUseCase) deleteBlob(file *entity.UploadFile) {
	if err := uc.blob.DeleteFile(file.ObjectName); err != nil {
		uc.logger.Warn("Failed to delete blob %s of file %d: %v", file.ObjectName, file.ID, err)
	}
}
