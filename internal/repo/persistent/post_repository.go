package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByBlogIDAndID(blogID, postID int64) (*entity.Post, error)
	GetPublicByNicknameAndID(nickname string, postID int64) (*entity.Post, error)
	ListByBlogID(blogID int64, isPublic *bool, limit, offset int) ([]*entity.PostThumbnail, int64, error)
	ListPublicByNickname(nickname, keyword string, categoryID int64, limit, offset int) ([]*entity.PostThumbnail, int64, error)
	Update(post *entity.Post) error
	Delete(id int64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByBlogIDAndID(blogID, postID int64) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.Where("blog_id = ? AND id = ?", blogID, postID).First(&postModel).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetPublicByNicknameAndID(nickname string, postID int64) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.
		Joins("INNER JOIN blogs ON blogs.id = posts.blog_id").
		Joins("INNER JOIN users ON users.id = blogs.user_id").
		Where("users.nickname = ? AND posts.id = ? AND posts.is_public = ?", nickname, postID, true).
		First(&postModel).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListByBlogID(blogID int64, isPublic *bool, limit, offset int) ([]*entity.PostThumbnail, int64, error) {
	query := r.db.Model(&model.PostModel{}).Where("blog_id = ?", blogID)
	if isPublic != nil {
		query = query.Where("is_public = ?", *isPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	return toThumbnails(postModels), total, nil
}

func (r *postRepository) ListPublicByNickname(nickname, keyword string, categoryID int64, limit, offset int) ([]*entity.PostThumbnail, int64, error) {
	query := r.db.Model(&model.PostModel{}).
		Joins("INNER JOIN blogs ON blogs.id = posts.blog_id").
		Joins("INNER JOIN users ON users.id = blogs.user_id").
		Where("users.nickname = ? AND posts.is_public = ?", nickname, true)

	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("posts.title LIKE ? OR posts.content LIKE ?", pattern, pattern)
	}
	if categoryID != 0 {
		query = query.Where("posts.category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []model.PostModel
	err := query.Order("posts.created_at DESC").Limit(limit).Offset(offset).Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	return toThumbnails(postModels), total, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	return r.db.Save(ToPostModel(post)).Error
}

func (r *postRepository) Delete(id int64) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}

func toThumbnails(models []model.PostModel) []*entity.PostThumbnail {
	thumbnails := make([]*entity.PostThumbnail, len(models))
	for i, m := range models {
		thumbnails[i] = &entity.PostThumbnail{
			ID:         m.ID,
			Title:      m.Title,
			CategoryID: m.CategoryID,
			IsPublic:   m.IsPublic,
			CreatedAt:  m.CreatedAt,
		}
	}
	return thumbnails
}
