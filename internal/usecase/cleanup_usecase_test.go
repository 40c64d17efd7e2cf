package usecase

import (
	"errors"
	"testing"
	"time"

	"inkwell/internal/entity"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCleanupUseCaseForTest(tempTTL, retention time.Duration) (CleanupUseCase, *MockUploadFileRepository, *MockBlobStorage) {
	fileRepo := new(MockUploadFileRepository)
	blob := new(MockBlobStorage)
	return NewCleanupUseCase(fileRepo, blob, logger.New(), tempTTL, retention), fileRepo, blob
}

func TestCleanupRun_SweepsStaleTempFiles(t *testing.T) {
	runAt := time.Date(2026, 8, 30, 4, 0, 0, 0, time.UTC)
	uc, fileRepo, blob := newCleanupUseCaseForTest(24*time.Hour, 168*time.Hour)

	stale := []*entity.UploadFile{
		{ID: 1, ObjectName: "users/1/images/2026/08/a.png", Status: entity.UploadStatusTemp},
		{ID: 2, ObjectName: "users/1/images/2026/08/b.png", Status: entity.UploadStatusTemp},
	}

	tempCutoff := runAt.Add(-24 * time.Hour)
	fileRepo.On("ListByStatusCreatedBefore", entity.UploadStatusTemp, tempCutoff, int64(0), 100).
		Return(stale, nil)
	blob.On("DeleteFile", "users/1/images/2026/08/a.png").Return(nil)
	blob.On("DeleteFile", "users/1/images/2026/08/b.png").Return(nil)
	fileRepo.On("SaveAll", mock.MatchedBy(func(files []*entity.UploadFile) bool {
		for _, f := range files {
			if f.Status != entity.UploadStatusDeleted || f.DeletedAt == nil || !f.DeletedAt.Equal(runAt) {
				return false
			}
		}
		return len(files) == 2
	})).Return(nil)

	purgeCutoff := runAt.Add(-168 * time.Hour)
	fileRepo.On("ListByStatusDeletedBefore", entity.UploadStatusDeleted, purgeCutoff, int64(0), 100).
		Return([]*entity.UploadFile{}, nil)

	report, err := uc.Run(runAt)

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TempSwept)
	assert.Equal(t, 0, report.Purged)
	fileRepo.AssertExpectations(t)
}

func TestCleanupRun_TempSweepMarksDeletedEvenOnBlobFailure(t *testing.T) {
	runAt := time.Now()
	uc, fileRepo, blob := newCleanupUseCaseForTest(24*time.Hour, 168*time.Hour)

	stale := []*entity.UploadFile{
		{ID: 1, ObjectName: "users/1/images/2026/08/a.png", Status: entity.UploadStatusTemp},
	}
	fileRepo.On("ListByStatusCreatedBefore", entity.UploadStatusTemp, mock.Anything, int64(0), 100).
		Return(stale, nil)
	blob.On("DeleteFile", "users/1/images/2026/08/a.png").Return(errors.New("storage down"))
	fileRepo.On("SaveAll", mock.MatchedBy(func(files []*entity.UploadFile) bool {
		return len(files) == 1 && files[0].Status == entity.UploadStatusDeleted
	})).Return(nil)
	fileRepo.On("ListByStatusDeletedBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.UploadFile{}, nil)

	report, err := uc.Run(runAt)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.TempSwept)
	assert.Equal(t, 1, report.BlobFailures)
	fileRepo.AssertExpectations(t)
}

func TestCleanupRun_PurgeSkipsRowsWhoseBlobDeleteFails(t *testing.T) {
	runAt := time.Now()
	uc, fileRepo, blob := newCleanupUseCaseForTest(24*time.Hour, 168*time.Hour)

	fileRepo.On("ListByStatusCreatedBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.UploadFile{}, nil)

	deletedAt := runAt.Add(-200 * time.Hour)
	purgeable := []*entity.UploadFile{
		{ID: 10, ObjectName: "users/1/images/2026/08/a.png", Status: entity.UploadStatusDeleted, DeletedAt: &deletedAt},
		{ID: 11, ObjectName: "users/1/images/2026/08/b.png", Status: entity.UploadStatusDeleted, DeletedAt: &deletedAt},
	}
	fileRepo.On("ListByStatusDeletedBefore", entity.UploadStatusDeleted, mock.Anything, int64(0), 100).
		Return(purgeable, nil)
	blob.On("DeleteFile", "users/1/images/2026/08/a.png").Return(errors.New("storage down"))
	blob.On("DeleteFile", "users/1/images/2026/08/b.png").Return(nil)
	fileRepo.On("DeleteByIDs", []int64{11}).Return(nil)

	report, err := uc.Run(runAt)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Purged)
	assert.Equal(t, 1, report.BlobFailures)
	fileRepo.AssertExpectations(t)
}

func TestCleanupRun_PagesThroughFullPages(t *testing.T) {
	runAt := time.Now()
	uc, fileRepo, blob := newCleanupUseCaseForTest(24*time.Hour, 168*time.Hour)

	first := make([]*entity.UploadFile, 100)
	for i := range first {
		first[i] = &entity.UploadFile{ID: int64(i + 1), ObjectName: "obj", Status: entity.UploadStatusTemp}
	}
	second := []*entity.UploadFile{
		{ID: 101, ObjectName: "obj", Status: entity.UploadStatusTemp},
	}

	fileRepo.On("ListByStatusCreatedBefore", entity.UploadStatusTemp, mock.Anything, int64(0), 100).
		Return(first, nil).Once()
	fileRepo.On("ListByStatusCreatedBefore", entity.UploadStatusTemp, mock.Anything, int64(100), 100).
		Return(second, nil).Once()
	blob.On("DeleteFile", "obj").Return(nil)
	fileRepo.On("SaveAll", mock.Anything).Return(nil)
	fileRepo.On("ListByStatusDeletedBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.UploadFile{}, nil)

	report, err := uc.Run(runAt)

	assert.NoError(t, err)
	assert.Equal(t, 101, report.TempSwept)
	fileRepo.AssertExpectations(t)
}

func TestCleanupRun_ListFailureStopsRun(t *testing.T) {
	runAt := time.Now()
	uc, fileRepo, _ := newCleanupUseCaseForTest(24*time.Hour, 168*time.Hour)

	fileRepo.On("ListByStatusCreatedBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	_, err := uc.Run(runAt)

	assert.Error(t, err)
	fileRepo.AssertNotCalled(t, "ListByStatusDeletedBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
