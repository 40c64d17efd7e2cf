package model

import "time"

type PostModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID     int64     `gorm:"not null;index" json:"blog_id"`
	CategoryID int64     `gorm:"not null;index" json:"category_id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	IsPublic   bool      `gorm:"default:true" json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}
