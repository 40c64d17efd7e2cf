package usecase

import (
	"fmt"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/apperror"
)

type BlogUseCase interface {
	GetMyBlog(userID int64) (*entity.Blog, error)
	GetByNickname(nickname string) (*entity.Blog, error)
	Update(userID int64, title, intro, bannerImageURL string) (*entity.Blog, error)
}

type blogUseCase struct {
	blogRepo persistent.BlogRepository
}

func NewBlogUseCase(blogRepo persistent.BlogRepository) BlogUseCase {
	return &blogUseCase{blogRepo: blogRepo}
}

func (uc *blogUseCase) GetMyBlog(userID int64) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}
	return blog, nil
}

func (uc *blogUseCase) GetByNickname(nickname string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByNickname(nickname)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}
	return blog, nil
}

func (uc *blogUseCase) Update(userID int64, title, intro, bannerImageURL string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperror.ErrBlogNotFound
	}

	title = strings.TrimSpace(title)
	if title != "" {
		blog.Title = title
	}
	blog.Intro = intro
	blog.BannerImageURL = bannerImageURL

	if err := uc.blogRepo.Update(blog); err != nil {
		return nil, fmt.Errorf("updating blog: %w", err)
	}
	return blog, nil
}
