package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/apperror"
	"inkwell/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const categoryTreeCacheTTL = time.Hour

type CategoryUseCase interface {
	Create(userID int64, name, description string, parentID *int64) (*entity.Category, error)
	GetRoots(userID int64) ([]*entity.Category, error)
	Get(userID, categoryID int64) (*entity.Category, error)
	GetMyTree(userID int64) ([]*entity.CategoryTree, error)
	GetTreeByNickname(nickname string) ([]*entity.CategoryTree, error)
	Update(userID, categoryID int64, name, description string, parentID *int64) (*entity.Category, error)
	Delete(userID, categoryID int64) (int64, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	blogRepo     persistent.BlogRepository
	redisClient  *redis.Client
	logger       *logger.Logger
	// defaultName is the reserved fallback category name. It is injected
	// here instead of hard-coded so tests can exercise alternates.
	defaultName string
}

func NewCategoryUseCase(
	categoryRepo persistent.CategoryRepository,
	blogRepo persistent.BlogRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
	defaultName string,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		redisClient:  redisClient,
		logger:       logger,
		defaultName:  defaultName,
	}
}

func (uc *categoryUseCase) Create(userID int64, name, description string, parentID *int64) (*entity.Category, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	name, err = uc.validateName(name)
	if err != nil {
		return nil, err
	}

	var parent *entity.Category
	if parentID != nil {
		parent, err = uc.categoryRepo.GetByID(*parentID)
		if err != nil {
			return nil, apperror.ErrCategoryNotFound
		}
		if err := uc.validateParent(parent, blog.ID); err != nil {
			return nil, err
		}
	}

	var newParentID *int64
	if parent != nil {
		newParentID = &parent.ID
	}

	exists, err := uc.categoryRepo.ExistsByBlogParentName(blog.ID, newParentID, name, 0)
	if err != nil {
		return nil, fmt.Errorf("checking category name uniqueness: %w", err)
	}
	if exists {
		return nil, apperror.ErrDuplicatedCategoryName
	}

	category := &entity.Category{
		BlogID:      blog.ID,
		ParentID:    newParentID,
		Name:        name,
		Description: description,
	}

	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	uc.invalidateTreeCache(blog.ID)
	return category, nil
}

func (uc *categoryUseCase) GetRoots(userID int64) ([]*entity.Category, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}
	return uc.categoryRepo.ListRootsByBlogID(blog.ID)
}

func (uc *categoryUseCase) Get(userID, categoryID int64) (*entity.Category, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, apperror.ErrCategoryNotFound
	}

	if category.BlogID != blog.ID {
		return nil, apperror.ErrCategoryForbidden
	}

	return category, nil
}

func (uc *categoryUseCase) GetMyTree(userID int64) ([]*entity.CategoryTree, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}
	return uc.buildTree(blog.ID)
}

func (uc *categoryUseCase) GetTreeByNickname(nickname string) ([]*entity.CategoryTree, error) {
	blog, err := uc.blogRepo.GetByNickname(nickname)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	if cached := uc.getCachedTree(blog.ID); cached != nil {
		return cached, nil
	}

	tree, err := uc.buildTree(blog.ID)
	if err != nil {
		return nil, err
	}

	uc.cacheTree(blog.ID, tree)
	return tree, nil
}

func (uc *categoryUseCase) Update(userID, categoryID int64, name, description string, parentID *int64) (*entity.Category, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, apperror.ErrCategoryNotFound
	}
	if category.BlogID != blog.ID {
		return nil, apperror.ErrCategoryForbidden
	}

	name, err = uc.validateName(name)
	if err != nil {
		return nil, err
	}

	var newParentID *int64
	if parentID != nil {
		if *parentID == categoryID {
			return nil, apperror.ErrCategoryInvalidParent
		}

		if category.ParentID != nil && *category.ParentID == *parentID {
			newParentID = category.ParentID
		} else {
			parent, err := uc.categoryRepo.GetByID(*parentID)
			if err != nil {
				return nil, apperror.ErrParentCategoryNotFound
			}
			if err := uc.validateParent(parent, blog.ID); err != nil {
				return nil, err
			}
			newParentID = &parent.ID
		}
	}

	exists, err := uc.categoryRepo.ExistsByBlogParentName(blog.ID, newParentID, name, category.ID)
	if err != nil {
		return nil, fmt.Errorf("checking category name uniqueness: %w", err)
	}
	if exists {
		return nil, apperror.ErrDuplicatedCategoryName
	}

	category.Name = name
	category.Description = description
	category.ParentID = newParentID

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	uc.invalidateTreeCache(blog.ID)
	return category, nil
}

func (uc *categoryUseCase) Delete(userID, categoryID int64) (int64, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return 0, apperror.ErrBlogNotFound
	}

	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return 0, apperror.ErrCategoryNotFound
	}
	if category.BlogID != blog.ID {
		return 0, apperror.ErrCategoryForbidden
	}

	if category.Name == uc.defaultName {
		return 0, apperror.ErrDefaultCategoryUndeletable
	}

	// Root deletion moves direct children under the fallback category
	// before the root row goes away, so a crash in between leaves an
	// orphaned-but-valid root rather than dangling children.
	if category.IsRoot() {
		fallback, err := uc.categoryRepo.GetByBlogIDAndName(blog.ID, uc.defaultName)
		if err != nil {
			uc.logger.Error("Fallback category missing for blog %d: %v", blog.ID, err)
			return 0, apperror.ErrDefaultCategoryNotFound
		}

		children, err := uc.categoryRepo.ListChildren(blog.ID, categoryID)
		if err != nil {
			return 0, fmt.Errorf("loading children of category %d: %w", categoryID, err)
		}

		for _, child := range children {
			child.SetParent(fallback)
		}

		if err := uc.categoryRepo.SaveAll(children); err != nil {
			return 0, fmt.Errorf("re-parenting children of category %d: %w", categoryID, err)
		}
	}

	if err := uc.categoryRepo.Delete(categoryID); err != nil {
		return 0, fmt.Errorf("deleting category %d: %w", categoryID, err)
	}

	uc.invalidateTreeCache(blog.ID)
	return categoryID, nil
}

func (uc *categoryUseCase) validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > 50 {
		return "", apperror.ErrCategoryNameInvalid
	}
	return name, nil
}

// validateParent enforces every rule a category must satisfy before it
// can accept children: same blog, root (depth limit), not the fallback.
func (uc *categoryUseCase) validateParent(parent *entity.Category, blogID int64) error {
	if parent.BlogID != blogID {
		return apperror.ErrCategoryForbidden
	}
	if !parent.IsRoot() {
		return apperror.ErrCategoryDepthExceeded
	}
	if parent.Name == uc.defaultName {
		return apperror.ErrCategoryCannotHaveChildren
	}
	return nil
}

func (uc *categoryUseCase) buildTree(blogID int64) ([]*entity.CategoryTree, error) {
	categories, err := uc.categoryRepo.ListByBlogID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*entity.CategoryTree{}, nil
		}
		return nil, fmt.Errorf("loading categories for blog %d: %w", blogID, err)
	}

	childrenByParent := make(map[int64][]*entity.Category)
	var roots []*entity.Category
	for _, category := range categories {
		if category.IsRoot() {
			roots = append(roots, category)
			continue
		}
		childrenByParent[*category.ParentID] = append(childrenByParent[*category.ParentID], category)
	}

	tree := make([]*entity.CategoryTree, 0, len(roots))
	for _, root := range roots {
		children := childrenByParent[root.ID]
		sort.Slice(children, func(i, j int) bool {
			return children[i].Name < children[j].Name
		})

		childViews := make([]entity.CategoryChild, 0, len(children))
		for _, child := range children {
			childViews = append(childViews, entity.CategoryChild{
				ID:          child.ID,
				Name:        child.Name,
				Description: child.Description,
			})
		}

		tree = append(tree, &entity.CategoryTree{
			ID:          root.ID,
			Name:        root.Name,
			Description: root.Description,
			Children:    childViews,
		})
	}

	return tree, nil
}

func treeCacheKey(blogID int64) string {
	return fmt.Sprintf("category_tree:%d", blogID)
}

func (uc *categoryUseCase) getCachedTree(blogID int64) []*entity.CategoryTree {
	if uc.redisClient == nil {
		return nil
	}

	data, err := uc.redisClient.Get(context.Background(), treeCacheKey(blogID)).Bytes()
	if err != nil {
		return nil
	}

	var tree []*entity.CategoryTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil
	}
	return tree
}

func (uc *categoryUseCase) cacheTree(blogID int64, tree []*entity.CategoryTree) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(tree)
	if err != nil {
		return
	}
	uc.redisClient.Set(context.Background(), treeCacheKey(blogID), data, categoryTreeCacheTTL)
}

func (uc *categoryUseCase) invalidateTreeCache(blogID int64) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(), treeCacheKey(blogID))
}
