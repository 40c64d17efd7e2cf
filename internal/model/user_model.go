package model

import "time"

type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Nickname  string    `gorm:"uniqueIndex;size:30;not null" json:"nickname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
