package http

import (
	"net/http"
	"strconv"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func formatPostResponse(post *entity.Post) gin.H {
	return gin.H{
		"id":          post.ID,
		"category_id": post.CategoryID,
		"title":       post.Title,
		"content":     post.Content,
		"is_public":   post.IsPublic,
		"created_at":  post.CreatedAt,
		"updated_at":  post.UpdatedAt,
	}
}

func formatPostListResponse(posts []*entity.PostThumbnail, total int64) gin.H {
	return gin.H{"posts": posts, "count": len(posts), "total": total}
}

// CategoryID may be omitted; a post without one lands in the blog's
// fallback category.
type PostRequest struct {
	Title      string `json:"title" binding:"required,max=100"`
	Content    string `json:"content"`
	CategoryID int64  `json:"category_id"`
	IsPublic   bool   `json:"is_public"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post in a leaf category. Files referenced in the content via fid markers become attached.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostRequest true "Post data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.Create(middleware.UserID(c), req.Title, req.Content, req.CategoryID, req.IsPublic)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatPostResponse(post))
}

// GetPost godoc
// @Summary      Get my post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	post, err := h.postUseCase.Get(middleware.UserID(c), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// GetPublicPost godoc
// @Summary      Get a public post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        nickname path string true "Owner nickname"
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{nickname}/posts/{id} [get]
func (h *PostHandler) GetPublicPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	post, err := h.postUseCase.GetPublic(c.Param("nickname"), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// ListMyPosts godoc
// @Summary      List my posts
// @Description  Paginated list of the authenticated user's posts, optionally filtered by visibility
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        is_public query bool false "Filter by visibility"
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	var isPublic *bool
	if visibility := c.Query("is_public"); visibility != "" {
		parsed, err := strconv.ParseBool(visibility)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_public value"})
			return
		}
		isPublic = &parsed
	}

	page, size := pageParams(c)
	posts, total, err := h.postUseCase.List(middleware.UserID(c), isPublic, page, size)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatPostListResponse(posts, total))
}

// ListPublicPosts godoc
// @Summary      List a blog's public posts
// @Description  Paginated public posts of a blog, with optional keyword search and category filter
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        nickname path string true "Owner nickname"
// @Param        keyword query string false "Search keyword (title and content)"
// @Param        category_id query int false "Filter by category"
// @Param        page query int false "Page number (1-based)"
// @Param        size query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /blogs/{nickname}/posts [get]
func (h *PostHandler) ListPublicPosts(c *gin.Context) {
	var keyword *string
	if raw, ok := c.GetQuery("keyword"); ok {
		keyword = &raw
	}

	var categoryID int64
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id value"})
			return
		}
		categoryID = parsed
	}

	page, size := pageParams(c)
	posts, total, err := h.postUseCase.ListPublic(c.Param("nickname"), keyword, categoryID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatPostListResponse(posts, total))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Update title, content, category or visibility. Attachments are re-synced from content.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body PostRequest true "Post data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.Update(middleware.UserID(c), postID, req.Title, req.Content, req.CategoryID, req.IsPublic)
	if err != nil {
		h.logger.Error("Failed to update post %d: %v", postID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post and detach all of its files
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	if err := h.postUseCase.Delete(middleware.UserID(c), postID); err != nil {
		h.logger.Error("Failed to delete post %d: %v", postID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func pageParams(c *gin.Context) (page, size int) {
	page, size = 1, 10
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if raw := c.Query("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			size = parsed
		}
	}
	return page, size
}
