package usecase

import (
	"fmt"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/apperror"
	"inkwell/pkg/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxTitleLength  = 100
)

type PostUseCase interface {
	Create(userID int64, title, content string, categoryID int64, isPublic bool) (*entity.Post, error)
	Get(userID, postID int64) (*entity.Post, error)
	GetPublic(nickname string, postID int64) (*entity.Post, error)
	List(userID int64, isPublic *bool, page, size int) ([]*entity.PostThumbnail, int64, error)
	ListPublic(nickname string, keyword *string, categoryID int64, page, size int) ([]*entity.PostThumbnail, int64, error)
	Update(userID, postID int64, title, content string, categoryID int64, isPublic bool) (*entity.Post, error)
	Delete(userID, postID int64) error
}

type postUseCase struct {
	postRepo     persistent.PostRepository
	categoryRepo persistent.CategoryRepository
	blogRepo     persistent.BlogRepository
	attachments  AttachmentUseCase
	logger       *logger.Logger
	defaultName  string
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	categoryRepo persistent.CategoryRepository,
	blogRepo persistent.BlogRepository,
	attachments AttachmentUseCase,
	logger *logger.Logger,
	defaultName string,
) PostUseCase {
	return &postUseCase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		attachments:  attachments,
		logger:       logger,
		defaultName:  defaultName,
	}
}

func (uc *postUseCase) Create(userID int64, title, content string, categoryID int64, isPublic bool) (*entity.Post, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	title, err = validateTitle(title)
	if err != nil {
		return nil, err
	}
	if categoryID == 0 {
		fallback, err := uc.categoryRepo.GetByBlogIDAndName(blog.ID, uc.defaultName)
		if err != nil {
			return nil, apperror.ErrDefaultCategoryNotFound
		}
		categoryID = fallback.ID
	} else if err := uc.validatePostCategory(blog.ID, categoryID); err != nil {
		return nil, err
	}

	post := &entity.Post{
		BlogID:     blog.ID,
		CategoryID: categoryID,
		Title:      title,
		Content:    content,
		IsPublic:   isPublic,
	}
	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	if err := uc.attachments.Reconcile(userID, post.ID, content); err != nil {
		uc.logger.Error("Attaching files to post %d: %v", post.ID, err)
		return nil, err
	}

	return post, nil
}

func (uc *postUseCase) Get(userID, postID int64) (*entity.Post, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	post, err := uc.postRepo.GetByBlogIDAndID(blog.ID, postID)
	if err != nil {
		return nil, apperror.ErrPostNotFound
	}
	return post, nil
}

func (uc *postUseCase) GetPublic(nickname string, postID int64) (*entity.Post, error) {
	post, err := uc.postRepo.GetPublicByNicknameAndID(nickname, postID)
	if err != nil {
		return nil, apperror.ErrPostNotFound
	}
	return post, nil
}

func (uc *postUseCase) List(userID int64, isPublic *bool, page, size int) ([]*entity.PostThumbnail, int64, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, 0, apperror.ErrBlogNotFound
	}

	limit, offset := pageWindow(page, size)
	return uc.postRepo.ListByBlogID(blog.ID, isPublic, limit, offset)
}

func (uc *postUseCase) ListPublic(nickname string, keyword *string, categoryID int64, page, size int) ([]*entity.PostThumbnail, int64, error) {
	var search string
	if keyword != nil {
		search = strings.TrimSpace(*keyword)
		if search == "" {
			return nil, 0, apperror.ErrInvalidKeyword
		}
	}

	limit, offset := pageWindow(page, size)
	return uc.postRepo.ListPublicByNickname(nickname, search, categoryID, limit, offset)
}

func (uc *postUseCase) Update(userID, postID int64, title, content string, categoryID int64, isPublic bool) (*entity.Post, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	post, err := uc.postRepo.GetByBlogIDAndID(blog.ID, postID)
	if err != nil {
		return nil, apperror.ErrPostNotFound
	}

	title, err = validateTitle(title)
	if err != nil {
		return nil, err
	}
	if categoryID == 0 {
		categoryID = post.CategoryID
	} else if categoryID != post.CategoryID {
		if err := uc.validatePostCategory(blog.ID, categoryID); err != nil {
			return nil, err
		}
	}

	post.Title = title
	post.Content = content
	post.CategoryID = categoryID
	post.IsPublic = isPublic

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("updating post %d: %w", postID, err)
	}

	if err := uc.attachments.Reconcile(userID, post.ID, content); err != nil {
		uc.logger.Error("Reconciling files of post %d: %v", post.ID, err)
		return nil, err
	}

	return post, nil
}

func (uc *postUseCase) Delete(userID, postID int64) error {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return apperror.ErrBlogNotFound
	}

	post, err := uc.postRepo.GetByBlogIDAndID(blog.ID, postID)
	if err != nil {
		return apperror.ErrPostNotFound
	}

	// Detach first: once the post row is gone there is no index left to
	// find its files by.
	if err := uc.attachments.DetachAllForPost(post.ID); err != nil {
		return fmt.Errorf("detaching files of post %d: %w", postID, err)
	}

	if err := uc.postRepo.Delete(post.ID); err != nil {
		return fmt.Errorf("deleting post %d: %w", postID, err)
	}
	return nil
}

// validatePostCategory ensures the category belongs to the blog and can
// hold posts. Roots with children are grouping nodes only.
func (uc *postUseCase) validatePostCategory(blogID, categoryID int64) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return apperror.ErrCategoryNotFound
	}
	if category.BlogID != blogID {
		return apperror.ErrCategoryForbidden
	}

	hasChildren, err := uc.categoryRepo.HasChildren(categoryID)
	if err != nil {
		return fmt.Errorf("checking children of category %d: %w", categoryID, err)
	}
	if hasChildren {
		return apperror.ErrNonLeafCategory
	}
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperror.ErrTitleBlank
	}
	if len([]rune(title)) > maxTitleLength {
		return "", apperror.ErrTitleTooLong
	}
	return title, nil
}

func pageWindow(page, size int) (limit, offset int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}
