package usecase

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/apperror"
	"inkwell/pkg/logger"
	"inkwell/pkg/s3"

	"github.com/google/uuid"
)

const (
	maxImageSize      = 10 << 20
	maxAttachmentSize = 50 << 20
)

var (
	imageExtensions      = map[string]struct{}{"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}}
	attachmentExtensions = map[string]struct{}{"pdf": {}, "zip": {}, "txt": {}, "md": {}}
)

type UploadUseCase interface {
	// Upload validates and stores one blob, then records it as a TEMP
	// file. The returned URL carries the fid marker the editor embeds
	// in post content.
	Upload(userID int64, uploadType entity.UploadType, filename string, size int64, contentType string, body io.Reader) (*entity.UploadFile, string, error)
	Get(userID, fileID int64) (*entity.UploadFile, error)
}

type uploadUseCase struct {
	fileRepo persistent.UploadFileRepository
	blob     s3.Blob
	logger   *logger.Logger
	now      func() time.Time
}

func NewUploadUseCase(fileRepo persistent.UploadFileRepository, blob s3.Blob, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		fileRepo: fileRepo,
		blob:     blob,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *uploadUseCase) Upload(userID int64, uploadType entity.UploadType, filename string, size int64, contentType string, body io.Reader) (*entity.UploadFile, string, error) {
	ext, err := validateUpload(uploadType, filename, size)
	if err != nil {
		return nil, "", err
	}

	key := uc.objectKey(userID, uploadType, ext)
	url, err := uc.blob.UploadFile(key, body, contentType)
	if err != nil {
		uc.logger.Error("Uploading %s for user %d: %v", key, userID, err)
		return nil, "", apperror.ErrFileUploadFailed
	}

	file := entity.NewTempUpload(userID, uploadType, key, url)
	if err := uc.fileRepo.Create(file); err != nil {
		// The blob is already in storage; without a row it would leak
		// forever, so undo the upload before failing.
		if delErr := uc.blob.DeleteFile(key); delErr != nil {
			uc.logger.Error("Rolling back orphaned blob %s: %v", key, delErr)
		}
		return nil, "", fmt.Errorf("recording uploaded file: %w", err)
	}

	return file, AppendFid(url, file.ID), nil
}

func (uc *uploadUseCase) Get(userID, fileID int64) (*entity.UploadFile, error) {
	file, err := uc.fileRepo.GetByID(fileID)
	if err != nil {
		return nil, apperror.ErrFileNotFound
	}
	if file.UserID != userID {
		return nil, apperror.ErrFileForbidden
	}
	return file, nil
}

func (uc *uploadUseCase) objectKey(userID int64, uploadType entity.UploadType, ext string) string {
	folder := "attachments"
	if uploadType == entity.UploadTypeImage {
		folder = "images"
	}
	now := uc.now().UTC()
	return fmt.Sprintf("users/%d/%s/%04d/%02d/%s.%s", userID, folder, now.Year(), int(now.Month()), uuid.NewString(), ext)
}

func validateUpload(uploadType entity.UploadType, filename string, size int64) (string, error) {
	if size <= 0 {
		return "", apperror.ErrFileEmpty
	}

	limit := int64(maxAttachmentSize)
	allowed := attachmentExtensions
	if uploadType == entity.UploadTypeImage {
		limit = maxImageSize
		allowed = imageExtensions
	}
	if size > limit {
		return "", apperror.ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowed[ext]; !ok {
		return "", apperror.ErrInvalidFileExtension
	}
	return ext, nil
}

// AppendFid tags a blob URL with the file's id so content scans can map
// the reference back to its row.
func AppendFid(url string, fileID int64) string {
	separator := "?"
	if strings.Contains(url, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%sfid=%d", url, separator, fileID)
}
