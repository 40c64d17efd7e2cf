package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTempUpload(t *testing.T) {
	file := NewTempUpload(1, UploadTypeImage, "users/1/images/2026/08/abc.png", "http://cdn/abc.png")

	assert.Equal(t, UploadStatusTemp, file.Status)
	assert.Nil(t, file.PostID)
	assert.Nil(t, file.DeletedAt)
}

func TestAttachTo_FromTemp(t *testing.T) {
	file := NewTempUpload(1, UploadTypeImage, "obj", "url")

	err := file.AttachTo(42)

	assert.NoError(t, err)
	assert.Equal(t, UploadStatusAttached, file.Status)
	if assert.NotNil(t, file.PostID) {
		assert.Equal(t, int64(42), *file.PostID)
	}
}

func TestAttachTo_AlreadyAttached(t *testing.T) {
	file := NewTempUpload(1, UploadTypeImage, "obj", "url")
	assert.NoError(t, file.AttachTo(42))

	// Re-saving the same content attaches again; this stays legal.
	err := file.AttachTo(42)

	assert.NoError(t, err)
	assert.Equal(t, UploadStatusAttached, file.Status)
}

func TestAttachTo_DeletedIsTerminal(t *testing.T) {
	file := NewTempUpload(1, UploadTypeImage, "obj", "url")
	assert.NoError(t, file.AttachTo(42))
	file.MarkDeleted(time.Now())

	err := file.AttachTo(42)

	assert.Error(t, err)
	assert.Equal(t, UploadStatusDeleted, file.Status)
}

func TestMarkDeleted_ClearsPostID(t *testing.T) {
	file := NewTempUpload(1, UploadTypeAttachment, "obj", "url")
	assert.NoError(t, file.AttachTo(42))

	deletedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	file.MarkDeleted(deletedAt)

	assert.Equal(t, UploadStatusDeleted, file.Status)
	assert.Nil(t, file.PostID)
	if assert.NotNil(t, file.DeletedAt) {
		assert.Equal(t, deletedAt, *file.DeletedAt)
	}
}
