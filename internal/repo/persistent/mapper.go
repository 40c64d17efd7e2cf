package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Nickname:  m.Nickname,
		Email:     m.Email,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Password:  e.Password,
		Nickname:  e.Nickname,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToBlogEntity(m *model.BlogModel) *entity.Blog {
	if m == nil {
		return nil
	}

	return &entity.Blog{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Intro:          m.Intro,
		BannerImageURL: m.BannerImageURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToBlogModel(e *entity.Blog) *model.BlogModel {
	if e == nil {
		return nil
	}

	return &model.BlogModel{
		ID:             e.ID,
		UserID:         e.UserID,
		Title:          e.Title,
		Intro:          e.Intro,
		BannerImageURL: e.BannerImageURL,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		BlogID:      m.BlogID,
		ParentID:    m.ParentID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		BlogID:      e.BlogID,
		ParentID:    e.ParentID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:         m.ID,
		BlogID:     m.BlogID,
		CategoryID: m.CategoryID,
		Title:      m.Title,
		Content:    m.Content,
		IsPublic:   m.IsPublic,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:         e.ID,
		BlogID:     e.BlogID,
		CategoryID: e.CategoryID,
		Title:      e.Title,
		Content:    e.Content,
		IsPublic:   e.IsPublic,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToUploadFileEntity(m *model.UploadFileModel) *entity.UploadFile {
	if m == nil {
		return nil
	}

	return &entity.UploadFile{
		ID:         m.ID,
		UserID:     m.UserID,
		PostID:     m.PostID,
		Type:       entity.UploadType(m.Type),
		ObjectName: m.ObjectName,
		URL:        m.URL,
		Status:     entity.UploadStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		DeletedAt:  m.DeletedAt,
	}
}

func ToUploadFileModel(e *entity.UploadFile) *model.UploadFileModel {
	if e == nil {
		return nil
	}

	return &model.UploadFileModel{
		ID:         e.ID,
		UserID:     e.UserID,
		PostID:     e.PostID,
		Type:       string(e.Type),
		ObjectName: e.ObjectName,
		URL:        e.URL,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		DeletedAt:  e.DeletedAt,
	}
}
