package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type BlogRepository interface {
	GetByUserID(userID int64) (*entity.Blog, error)
	GetByNickname(nickname string) (*entity.Blog, error)
	Update(blog *entity.Blog) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) GetByUserID(userID int64) (*entity.Blog, error) {
	var blogModel model.BlogModel
	if err := r.db.Where("user_id = ?", userID).First(&blogModel).Error; err != nil {
		return nil, err
	}
	return ToBlogEntity(&blogModel), nil
}

func (r *blogRepository) GetByNickname(nickname string) (*entity.Blog, error) {
	var blogModel model.BlogModel
	err := r.db.
		Joins("INNER JOIN users ON users.id = blogs.user_id").
		Where("users.nickname = ?", nickname).
		First(&blogModel).Error
	if err != nil {
		return nil, err
	}
	return ToBlogEntity(&blogModel), nil
}

func (r *blogRepository) Update(blog *entity.Blog) error {
	return r.db.Save(ToBlogModel(blog)).Error
}
