package usecase

import (
	"io"
	"time"

	"inkwell/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithBlog(user *entity.User, blog *entity.Blog, fallback *entity.Category) error {
	args := m.Called(user, blog, fallback)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByNickname(nickname string) (bool, error) {
	args := m.Called(nickname)
	return args.Bool(0), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) GetByUserID(userID int64) (*entity.Blog, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetByNickname(nickname string) (*entity.Blog, error) {
	args := m.Called(nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogRepository) Update(blog *entity.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(id int64) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByBlogIDAndName(blogID int64, name string) (*entity.Category, error) {
	args := m.Called(blogID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByBlogID(blogID int64) ([]*entity.Category, error) {
	args := m.Called(blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListRootsByBlogID(blogID int64) ([]*entity.Category, error) {
	args := m.Called(blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListChildren(blogID, parentID int64) ([]*entity.Category, error) {
	args := m.Called(blogID, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByBlogParentName(blogID int64, parentID *int64, name string, excludeID int64) (bool, error) {
	args := m.Called(blogID, parentID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) HasChildren(categoryID int64) (bool, error) {
	args := m.Called(categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveAll(categories []*entity.Category) error {
	args := m.Called(categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByBlogIDAndID(blogID, postID int64) (*entity.Post, error) {
	args := m.Called(blogID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetPublicByNicknameAndID(nickname string, postID int64) (*entity.Post, error) {
	args := m.Called(nickname, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByBlogID(blogID int64, isPublic *bool, limit, offset int) ([]*entity.PostThumbnail, int64, error) {
	args := m.Called(blogID, isPublic, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.PostThumbnail), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListPublicByNickname(nickname, keyword string, categoryID int64, limit, offset int) ([]*entity.PostThumbnail, int64, error) {
	args := m.Called(nickname, keyword, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.PostThumbnail), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUploadFileRepository struct {
	mock.Mock
}

func (m *MockUploadFileRepository) Create(file *entity.UploadFile) error {
	args := m.Called(file)
	return args.Error(0)
}

func (m *MockUploadFileRepository) GetByID(id int64) (*entity.UploadFile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UploadFile), args.Error(1)
}

func (m *MockUploadFileRepository) ListByPostIDAndStatus(postID int64, status entity.UploadStatus) ([]*entity.UploadFile, error) {
	args := m.Called(postID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UploadFile), args.Error(1)
}

func (m *MockUploadFileRepository) ListByStatusCreatedBefore(status entity.UploadStatus, cutoff time.Time, afterID int64, limit int) ([]*entity.UploadFile, error) {
	args := m.Called(status, cutoff, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UploadFile), args.Error(1)
}

func (m *MockUploadFileRepository) ListByStatusDeletedBefore(status entity.UploadStatus, cutoff time.Time, afterID int64, limit int) ([]*entity.UploadFile, error) {
	args := m.Called(status, cutoff, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UploadFile), args.Error(1)
}

func (m *MockUploadFileRepository) SaveAll(files []*entity.UploadFile) error {
	args := m.Called(files)
	return args.Error(0)
}

func (m *MockUploadFileRepository) DeleteByIDs(ids []int64) error {
	args := m.Called(ids)
	return args.Error(0)
}

type MockAttachmentUseCase struct {
	mock.Mock
}

func (m *MockAttachmentUseCase) ExtractFileIDs(content string) []int64 {
	args := m.Called(content)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int64)
}

func (m *MockAttachmentUseCase) Reconcile(userID, postID int64, content string) error {
	args := m.Called(userID, postID, content)
	return args.Error(0)
}

func (m *MockAttachmentUseCase) DetachAllForPost(postID int64) error {
	args := m.Called(postID)
	return args.Error(0)
}

type MockBlobStorage struct {
	mock.Mock
}

func (m *MockBlobStorage) UploadFile(key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
