package model

import "time"

type UploadFileModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64      `gorm:"not null;index" json:"user_id"`
	PostID     *int64     `gorm:"index" json:"post_id"`
	Type       string     `gorm:"type:varchar(20);not null" json:"type"`
	ObjectName string     `gorm:"size:1024;not null" json:"object_name"`
	URL        string     `gorm:"size:2048;not null" json:"url"`
	Status     string     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
	DeletedAt  *time.Time `gorm:"index" json:"deleted_at"`
}

func (UploadFileModel) TableName() string {
	return "upload_files"
}
