package apperror

import (
	"errors"
	"net/http"
)

// Error is a user-visible failure with a stable code and message.
// Handlers map it straight onto an HTTP response.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// From extracts an *Error from err; unknown errors map to a generic 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal
}

var (
	/* 401 UNAUTHORIZED */
	ErrInvalidCredentials = New(http.StatusUnauthorized, "AUTH_001", "invalid username or password")
	ErrAuthRequired       = New(http.StatusUnauthorized, "AUTH_002", "authentication required")

	/* 403 FORBIDDEN */
	ErrCategoryForbidden = New(http.StatusForbidden, "CATEGORY_403", "category belongs to another blog")
	ErrFileForbidden     = New(http.StatusForbidden, "FILE_403", "file belongs to another user")

	/* 404 NOT_FOUND */
	ErrUserNotFound            = New(http.StatusNotFound, "USER_001", "user not found")
	ErrBlogNotFound            = New(http.StatusNotFound, "BLOG_001", "blog not found")
	ErrCategoryNotFound        = New(http.StatusNotFound, "CATEGORY_001", "category not found")
	ErrParentCategoryNotFound  = New(http.StatusNotFound, "CATEGORY_002", "parent category not found")
	ErrDefaultCategoryNotFound = New(http.StatusNotFound, "CATEGORY_003", "default category not found")
	ErrPostNotFound            = New(http.StatusNotFound, "POST_001", "post not found")
	ErrFileNotFound            = New(http.StatusNotFound, "FILE_001", "file not found")

	/* 400 BAD_REQUEST */
	ErrCategoryDepthExceeded      = New(http.StatusBadRequest, "CATEGORY_101", "categories can only be nested one level deep")
	ErrCategoryCannotHaveChildren = New(http.StatusBadRequest, "CATEGORY_102", "the default category cannot have children")
	ErrCategoryInvalidParent      = New(http.StatusBadRequest, "CATEGORY_103", "category cannot be its own parent")
	ErrDefaultCategoryUndeletable = New(http.StatusBadRequest, "CATEGORY_104", "the default category cannot be deleted")
	ErrCategoryNameInvalid        = New(http.StatusBadRequest, "CATEGORY_105", "category name must be between 1 and 50 characters")
	ErrTitleBlank                 = New(http.StatusBadRequest, "POST_101", "post title cannot be blank")
	ErrTitleTooLong               = New(http.StatusBadRequest, "POST_104", "post title must be at most 100 characters")
	ErrNonLeafCategory            = New(http.StatusBadRequest, "POST_102", "posts cannot use a category that has children")
	ErrInvalidKeyword             = New(http.StatusBadRequest, "POST_103", "search keyword cannot be blank")
	ErrFileEmpty                  = New(http.StatusBadRequest, "FILE_101", "file is empty")
	ErrFileTooLarge               = New(http.StatusBadRequest, "FILE_102", "file exceeds the maximum allowed size")
	ErrInvalidFileExtension       = New(http.StatusBadRequest, "FILE_103", "file extension is not allowed")

	/* 409 CONFLICT */
	ErrDuplicatedUsername     = New(http.StatusConflict, "USER_101", "username is already taken")
	ErrDuplicatedEmail        = New(http.StatusConflict, "USER_102", "email is already in use")
	ErrDuplicatedNickname     = New(http.StatusConflict, "USER_103", "nickname is already in use")
	ErrDuplicatedCategoryName = New(http.StatusConflict, "CATEGORY_201", "a category with this name already exists under the same parent")

	/* 500 INTERNAL_SERVER_ERROR */
	ErrInternal         = New(http.StatusInternalServerError, "COMMON_500", "internal server error")
	ErrFileUploadFailed = New(http.StatusInternalServerError, "FILE_500", "failed to upload file")
)
