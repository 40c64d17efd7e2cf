package entity

import "time"

type Post struct {
	ID         int64     `json:"id"`
	BlogID     int64     `json:"blog_id"`
	CategoryID int64     `json:"category_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostThumbnail is the listing projection used by paginated queries.
type PostThumbnail struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	CategoryID int64     `json:"category_id"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}
