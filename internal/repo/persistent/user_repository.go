package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	// CreateWithBlog persists the user together with their blog and the
	// blog's fallback category in a single transaction.
	CreateWithBlog(user *entity.User, blog *entity.Blog, fallback *entity.Category) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByNickname(nickname string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithBlog(user *entity.User, blog *entity.Blog, fallback *entity.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		userModel := ToUserModel(user)
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}

		blogModel := ToBlogModel(blog)
		blogModel.UserID = userModel.ID
		if err := tx.Create(blogModel).Error; err != nil {
			return err
		}

		fallbackModel := ToCategoryModel(fallback)
		fallbackModel.BlogID = blogModel.ID
		if err := tx.Create(fallbackModel).Error; err != nil {
			return err
		}

		*user = *ToUserEntity(userModel)
		*blog = *ToBlogEntity(blogModel)
		*fallback = *ToCategoryEntity(fallbackModel)
		return nil
	})
}

func (r *userRepository) GetByID(id int64) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByNickname(nickname string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("nickname = ?", nickname).Count(&count).Error
	return count > 0, err
}
