package model

import "time"

type CategoryModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID      int64     `gorm:"not null;index;uniqueIndex:uk_category_blog_parent_name" json:"blog_id"`
	ParentID    *int64    `gorm:"index;uniqueIndex:uk_category_blog_parent_name" json:"parent_id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex:uk_category_blog_parent_name" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
