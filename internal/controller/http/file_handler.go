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

type FileHandler struct {
	uploadUseCase usecase.UploadUseCase
	logger        *logger.Logger
}

func NewFileHandler(uploadUseCase usecase.UploadUseCase, logger *logger.Logger) *FileHandler {
	return &FileHandler{
		uploadUseCase: uploadUseCase,
		logger:        logger,
	}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Upload an image (jpg/jpeg/png/gif/webp, max 10MiB). The returned URL carries the fid marker to embed in post content.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /files/images [post]
func (h *FileHandler) UploadImage(c *gin.Context) {
	h.upload(c, entity.UploadTypeImage)
}

// UploadAttachment godoc
// @Summary      Upload an attachment
// @Description  Upload an attachment (pdf/zip/txt/md, max 50MiB). The returned URL carries the fid marker to embed in post content.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Attachment file"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /files/attachments [post]
func (h *FileHandler) UploadAttachment(c *gin.Context) {
	h.upload(c, entity.UploadTypeAttachment)
}

func (h *FileHandler) upload(c *gin.Context, uploadType entity.UploadType) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	file, url, err := h.uploadUseCase.Upload(middleware.UserID(c), uploadType, header.Filename, header.Size, contentType, src)
	if err != nil {
		h.logger.Error("Failed to upload %s: %v", header.Filename, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     file.ID,
		"url":    url,
		"status": file.Status,
	})
}

// GetFile godoc
// @Summary      Get file metadata
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "File ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /files/{id} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	fileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}

	file, err := h.uploadUseCase.Get(middleware.UserID(c), fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         file.ID,
		"post_id":    file.PostID,
		"type":       file.Type,
		"url":        file.URL,
		"status":     file.Status,
		"created_at": file.CreatedAt,
	})
}
