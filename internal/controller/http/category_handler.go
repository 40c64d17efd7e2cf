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

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *logger.Logger
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

func formatCategoryResponse(category *entity.Category) gin.H {
	return gin.H{
		"id":          category.ID,
		"parent_id":   category.ParentID,
		"name":        category.Name,
		"description": category.Description,
		"created_at":  category.CreatedAt,
		"updated_at":  category.UpdatedAt,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=255"`
	ParentID    *int64 `json:"parent_id"`
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Create a root category, or a child when parent_id is given. Children can only hang off root categories.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CategoryRequest true "Category data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryUseCase.Create(middleware.UserID(c), req.Name, req.Description, req.ParentID)
	if err != nil {
		h.logger.Error("Failed to create category: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatCategoryResponse(category))
}

// GetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	category, err := h.categoryUseCase.Get(middleware.UserID(c), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatCategoryResponse(category))
}

// GetMyCategoryTree godoc
// @Summary      Get my category tree
// @Description  Full two-level tree of the authenticated user's categories. Pass view=roots for a flat list of root categories only.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        view query string false "Set to roots for root categories only"
// @Success      200  {object}  map[string]interface{}
// @Router       /categories [get]
func (h *CategoryHandler) GetMyCategoryTree(c *gin.Context) {
	userID := middleware.UserID(c)

	if c.Query("view") == "roots" {
		roots, err := h.categoryUseCase.GetRoots(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": roots})
		return
	}

	tree, err := h.categoryUseCase.GetMyTree(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": tree})
}

// GetCategoryTreeByNickname godoc
// @Summary      Get a blog's category tree
// @Description  Public category tree of the blog identified by nickname
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        nickname path string true "Owner nickname"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{nickname}/categories [get]
func (h *CategoryHandler) GetCategoryTreeByNickname(c *gin.Context) {
	tree, err := h.categoryUseCase.GetTreeByNickname(c.Param("nickname"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": tree})
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Rename, change description or move a category under a different root
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Param        request body CategoryRequest true "Category data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryUseCase.Update(middleware.UserID(c), categoryID, req.Name, req.Description, req.ParentID)
	if err != nil {
		h.logger.Error("Failed to update category %d: %v", categoryID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Delete a category. Children of a deleted root move to the default category. The default category cannot be deleted.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	deletedID, err := h.categoryUseCase.Delete(middleware.UserID(c), categoryID)
	if err != nil {
		h.logger.Error("Failed to delete category %d: %v", categoryID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_id": deletedID})
}
