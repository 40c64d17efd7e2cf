package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByBlogIDAndName(blogID int64, name string) (*entity.Category, error)
	ListByBlogID(blogID int64) ([]*entity.Category, error)
	ListRootsByBlogID(blogID int64) ([]*entity.Category, error)
	ListChildren(blogID, parentID int64) ([]*entity.Category, error)
	ExistsByBlogParentName(blogID int64, parentID *int64, name string, excludeID int64) (bool, error)
	HasChildren(categoryID int64) (bool, error)
	Update(category *entity.Category) error
	SaveAll(categories []*entity.Category) error
	Delete(id int64) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.Create(categoryModel).Error; err != nil {
		return err
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) GetByID(id int64) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) GetByBlogIDAndName(blogID int64, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("blog_id = ? AND name = ?", blogID, name).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) ListByBlogID(blogID int64) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := r.db.Where("blog_id = ?", blogID).Order("name ASC").Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	return toCategoryEntities(categoryModels), nil
}

func (r *categoryRepository) ListRootsByBlogID(blogID int64) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := r.db.
		Where("blog_id = ? AND parent_id IS NULL", blogID).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	return toCategoryEntities(categoryModels), nil
}

func (r *categoryRepository) ListChildren(blogID, parentID int64) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := r.db.
		Where("blog_id = ? AND parent_id = ?", blogID, parentID).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	return toCategoryEntities(categoryModels), nil
}

// ExistsByBlogParentName reports whether another category already uses
// this name under the same parent. excludeID skips the row being
// updated; pass 0 on create.
func (r *categoryRepository) ExistsByBlogParentName(blogID int64, parentID *int64, name string, excludeID int64) (bool, error) {
	query := r.db.Model(&model.CategoryModel{}).Where("blog_id = ? AND name = ?", blogID, name)

	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) HasChildren(categoryID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.CategoryModel{}).Where("parent_id = ?", categoryID).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) Update(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	// Save skips nil fields on updates, so clearing the parent needs an
	// explicit column write.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(categoryModel).Error; err != nil {
			return err
		}
		if categoryModel.ParentID == nil {
			return tx.Model(&model.CategoryModel{}).
				Where("id = ?", categoryModel.ID).
				Update("parent_id", nil).Error
		}
		return nil
	})
}

func (r *categoryRepository) SaveAll(categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, category := range categories {
			if err := tx.Save(ToCategoryModel(category)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *categoryRepository) Delete(id int64) error {
	return r.db.Delete(&model.CategoryModel{}, "id = ?", id).Error
}

func toCategoryEntities(models []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, len(models))
	for i := range models {
		categories[i] = ToCategoryEntity(&models[i])
	}
	return categories
}
