package http

import (
	"net/http"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

func formatBlogResponse(blog *entity.Blog) gin.H {
	return gin.H{
		"id":               blog.ID,
		"title":            blog.Title,
		"intro":            blog.Intro,
		"banner_image_url": blog.BannerImageURL,
		"created_at":       blog.CreatedAt,
		"updated_at":       blog.UpdatedAt,
	}
}

// GetMyBlog godoc
// @Summary      Get my blog
// @Description  Returns the authenticated user's blog settings
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /blog [get]
func (h *BlogHandler) GetMyBlog(c *gin.Context) {
	blog, err := h.blogUseCase.GetMyBlog(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatBlogResponse(blog))
}

// GetBlogByNickname godoc
// @Summary      Get a blog by nickname
// @Description  Public view of a blog identified by its owner's nickname
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        nickname path string true "Owner nickname"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{nickname} [get]
func (h *BlogHandler) GetBlogByNickname(c *gin.Context) {
	blog, err := h.blogUseCase.GetByNickname(c.Param("nickname"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatBlogResponse(blog))
}

type UpdateBlogRequest struct {
	Title          string `json:"title" binding:"max=50"`
	Intro          string `json:"intro" binding:"max=255"`
	BannerImageURL string `json:"banner_image_url" binding:"max=2048"`
}

// UpdateBlog godoc
// @Summary      Update my blog
// @Description  Update blog title, intro and banner image
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateBlogRequest true "Blog settings"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blog [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogUseCase.Update(middleware.UserID(c), req.Title, req.Intro, req.BannerImageURL)
	if err != nil {
		h.logger.Error("Failed to update blog: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatBlogResponse(blog))
}
