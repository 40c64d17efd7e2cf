package entity

import (
	"fmt"
	"time"
)

type UploadType string

const (
	UploadTypeImage      UploadType = "image"
	UploadTypeAttachment UploadType = "attachment"
)

type UploadStatus string

const (
	UploadStatusTemp     UploadStatus = "TEMP"
	UploadStatusAttached UploadStatus = "ATTACHED"
	UploadStatusDeleted  UploadStatus = "DELETED"
)

// UploadFile tracks one uploaded blob through its lifecycle:
// TEMP on upload, ATTACHED once a post references it, DELETED once it
// is no longer referenced. DELETED is terminal for attachment purposes;
// the row itself survives until the purge sweep removes it.
type UploadFile struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"user_id"`
	PostID     *int64       `json:"post_id,omitempty"`
	Type       UploadType   `json:"type"`
	ObjectName string       `json:"object_name"`
	URL        string       `json:"url"`
	Status     UploadStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	DeletedAt  *time.Time   `json:"deleted_at,omitempty"`
}

func NewTempUpload(userID int64, uploadType UploadType, objectName, url string) *UploadFile {
	return &UploadFile{
		UserID:     userID,
		Type:       uploadType,
		ObjectName: objectName,
		URL:        url,
		Status:     UploadStatusTemp,
	}
}

// AttachTo binds the file to a post. A DELETED file cannot come back;
// a newly referenced file must be a fresh upload.
func (f *UploadFile) AttachTo(postID int64) error {
	if f.Status == UploadStatusDeleted {
		return fmt.Errorf("upload file %d is deleted and cannot be re-attached", f.ID)
	}
	f.PostID = &postID
	f.Status = UploadStatusAttached
	return nil
}

// MarkDeleted detaches the file and records when it became eligible for
// purging. PostID is non-nil only while the file is ATTACHED.
func (f *UploadFile) MarkDeleted(at time.Time) {
	f.Status = UploadStatusDeleted
	f.PostID = nil
	f.DeletedAt = &at
}
