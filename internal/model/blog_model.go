package model

import "time"

type BlogModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64     `gorm:"uniqueIndex;not null" json:"user_id"`
	Title          string    `gorm:"not null" json:"title"`
	Intro          string    `json:"intro"`
	BannerImageURL string    `gorm:"type:varchar(500)" json:"banner_image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (BlogModel) TableName() string {
	return "blogs"
}
