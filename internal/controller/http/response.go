package http

import (
	"inkwell/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// respondError translates any error into the API's error envelope.
func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	c.JSON(appErr.Status, gin.H{"code": appErr.Code, "message": appErr.Message})
}
