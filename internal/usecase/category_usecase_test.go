package usecase

import (
	"errors"
	"testing"

	"inkwell/internal/entity"
	"inkwell/pkg/apperror"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const testDefaultCategory = "unclassified"

func newCategoryUseCaseForTest(categoryRepo *MockCategoryRepository, blogRepo *MockBlogRepository) CategoryUseCase {
	return NewCategoryUseCase(categoryRepo, blogRepo, nil, logger.New(), testDefaultCategory)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCategoryUseCase_Create_Root(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("ExistsByBlogParentName", int64(10), (*int64)(nil), "dev", int64(0)).Return(false, nil)
	categoryRepo.On("Create", mock.MatchedBy(func(c *entity.Category) bool {
		return c.BlogID == 10 && c.ParentID == nil && c.Name == "dev"
	})).Return(nil)

	category, err := uc.Create(1, "  dev  ", "notes", nil)

	assert.NoError(t, err)
	assert.Equal(t, "dev", category.Name)
	assert.Nil(t, category.ParentID)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryUseCase_Create_ChildOfRoot(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	parent := &entity.Category{ID: 5, BlogID: 10, Name: "dev"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(5)).Return(parent, nil)
	categoryRepo.On("ExistsByBlogParentName", int64(10), int64Ptr(5), "go", int64(0)).Return(false, nil)
	categoryRepo.On("Create", mock.Anything).Return(nil)

	category, err := uc.Create(1, "go", "", int64Ptr(5))

	assert.NoError(t, err)
	assert.Equal(t, int64(5), *category.ParentID)
}

func TestCategoryUseCase_Create_DepthExceeded(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	child := &entity.Category{ID: 6, BlogID: 10, ParentID: int64Ptr(5), Name: "go"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(6)).Return(child, nil)

	_, err := uc.Create(1, "generics", "", int64Ptr(6))

	assert.ErrorIs(t, err, apperror.ErrCategoryDepthExceeded)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoryUseCase_Create_UnderDefaultRejected(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	fallback := &entity.Category{ID: 1, BlogID: 10, Name: testDefaultCategory}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(1)).Return(fallback, nil)

	_, err := uc.Create(1, "sub", "", int64Ptr(1))

	assert.ErrorIs(t, err, apperror.ErrCategoryCannotHaveChildren)
}

func TestCategoryUseCase_Create_ParentFromOtherBlog(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	foreign := &entity.Category{ID: 7, BlogID: 99, Name: "dev"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(7)).Return(foreign, nil)

	_, err := uc.Create(1, "go", "", int64Ptr(7))

	assert.ErrorIs(t, err, apperror.ErrCategoryForbidden)
}

func TestCategoryUseCase_Create_DuplicateNameUnderSameParent(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("ExistsByBlogParentName", int64(10), (*int64)(nil), "dev", int64(0)).Return(true, nil)

	_, err := uc.Create(1, "dev", "", nil)

	assert.ErrorIs(t, err, apperror.ErrDuplicatedCategoryName)
}

func TestCategoryUseCase_Create_NameValidation(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)

	_, err := uc.Create(1, "   ", "", nil)
	assert.ErrorIs(t, err, apperror.ErrCategoryNameInvalid)

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'x'
	}
	_, err = uc.Create(1, string(long), "", nil)
	assert.ErrorIs(t, err, apperror.ErrCategoryNameInvalid)
}

func TestCategoryUseCase_Update_SelfParentRejected(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(5)).Return(&entity.Category{ID: 5, BlogID: 10, Name: "dev"}, nil)

	_, err := uc.Update(1, 5, "dev", "", int64Ptr(5))

	assert.ErrorIs(t, err, apperror.ErrCategoryInvalidParent)
}

func TestCategoryUseCase_Update_ReparentToNonRootRejected(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	target := &entity.Category{ID: 8, BlogID: 10, Name: "notes"}
	nonRoot := &entity.Category{ID: 6, BlogID: 10, ParentID: int64Ptr(5), Name: "go"}

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(8)).Return(target, nil)
	categoryRepo.On("GetByID", int64(6)).Return(nonRoot, nil)

	_, err := uc.Update(1, 8, "notes", "", int64Ptr(6))

	assert.ErrorIs(t, err, apperror.ErrCategoryDepthExceeded)
}

func TestCategoryUseCase_Update_RenameKeepsParent(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	target := &entity.Category{ID: 6, BlogID: 10, ParentID: int64Ptr(5), Name: "go"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(6)).Return(target, nil)
	categoryRepo.On("ExistsByBlogParentName", int64(10), int64Ptr(5), "golang", int64(6)).Return(false, nil)
	categoryRepo.On("Update", mock.MatchedBy(func(c *entity.Category) bool {
		return c.Name == "golang" && c.ParentID != nil && *c.ParentID == 5
	})).Return(nil)

	updated, err := uc.Update(1, 6, "golang", "", int64Ptr(5))

	assert.NoError(t, err)
	assert.Equal(t, "golang", updated.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryUseCase_Delete_DefaultRejected(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	fallback := &entity.Category{ID: 1, BlogID: 10, Name: testDefaultCategory}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(1)).Return(fallback, nil)

	_, err := uc.Delete(1, 1)

	assert.ErrorIs(t, err, apperror.ErrDefaultCategoryUndeletable)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCategoryUseCase_Delete_RootReparentsChildren(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	root := &entity.Category{ID: 5, BlogID: 10, Name: "dev"}
	fallback := &entity.Category{ID: 1, BlogID: 10, Name: testDefaultCategory}
	children := []*entity.Category{
		{ID: 6, BlogID: 10, ParentID: int64Ptr(5), Name: "go"},
		{ID: 7, BlogID: 10, ParentID: int64Ptr(5), Name: "rust"},
	}

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(5)).Return(root, nil)
	categoryRepo.On("GetByBlogIDAndName", int64(10), testDefaultCategory).Return(fallback, nil)
	categoryRepo.On("ListChildren", int64(10), int64(5)).Return(children, nil)
	categoryRepo.On("SaveAll", mock.MatchedBy(func(cs []*entity.Category) bool {
		for _, c := range cs {
			if c.ParentID == nil || *c.ParentID != fallback.ID {
				return false
			}
		}
		return len(cs) == 2
	})).Return(nil)
	categoryRepo.On("Delete", int64(5)).Return(nil)

	deletedID, err := uc.Delete(1, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), deletedID)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryUseCase_Delete_LeafSkipsReparent(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	leaf := &entity.Category{ID: 6, BlogID: 10, ParentID: int64Ptr(5), Name: "go"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(6)).Return(leaf, nil)
	categoryRepo.On("Delete", int64(6)).Return(nil)

	_, err := uc.Delete(1, 6)

	assert.NoError(t, err)
	categoryRepo.AssertNotCalled(t, "SaveAll", mock.Anything)
}

func TestCategoryUseCase_Delete_OtherUsersCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	foreign := &entity.Category{ID: 7, BlogID: 99, Name: "dev"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(7)).Return(foreign, nil)

	_, err := uc.Delete(1, 7)

	assert.ErrorIs(t, err, apperror.ErrCategoryForbidden)
}

func TestCategoryUseCase_GetMyTree(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	categories := []*entity.Category{
		{ID: 1, BlogID: 10, Name: testDefaultCategory},
		{ID: 5, BlogID: 10, Name: "dev"},
		{ID: 7, BlogID: 10, ParentID: int64Ptr(5), Name: "rust"},
		{ID: 6, BlogID: 10, ParentID: int64Ptr(5), Name: "go"},
	}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("ListByBlogID", int64(10)).Return(categories, nil)

	tree, err := uc.GetMyTree(1)

	assert.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, "dev", tree[1].Name)
	assert.Len(t, tree[1].Children, 2)
	assert.Equal(t, "go", tree[1].Children[0].Name)
	assert.Equal(t, "rust", tree[1].Children[1].Name)
	assert.Empty(t, tree[0].Children)
}

func TestCategoryUseCase_Get_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Get(1, 404)

	assert.ErrorIs(t, err, apperror.ErrCategoryNotFound)
}

func TestCategoryUseCase_Delete_FallbackMissing(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCategoryUseCaseForTest(categoryRepo, blogRepo)

	root := &entity.Category{ID: 5, BlogID: 10, Name: "dev"}
	blogRepo.On("GetByUserID", int64(1)).Return(&entity.Blog{ID: 10, UserID: 1}, nil)
	categoryRepo.On("GetByID", int64(5)).Return(root, nil)
	categoryRepo.On("GetByBlogIDAndName", int64(10), testDefaultCategory).Return(nil, errors.New("not found"))

	_, err := uc.Delete(1, 5)

	assert.ErrorIs(t, err, apperror.ErrDefaultCategoryNotFound)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
