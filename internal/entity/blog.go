package entity

import "time"

type Blog struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Title          string    `json:"title"`
	Intro          string    `json:"intro"`
	BannerImageURL string    `json:"banner_image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultBlog is the blog every user gets at signup.
func DefaultBlog(user *User) *Blog {
	return &Blog{
		UserID: user.ID,
		Title:  user.Nickname + "'s blog",
		Intro:  "",
	}
}
