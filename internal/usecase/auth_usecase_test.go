package usecase

import (
	"errors"
	"testing"

	"inkwell/internal/entity"
	"inkwell/pkg/apperror"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCaseForTest(userRepo *MockUserRepository) AuthUseCase {
	return NewAuthUseCase(userRepo, jwt.NewService("test-secret"), logger.New(), testDefaultCategory)
}

func TestSignUp(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	userRepo.On("ExistsByUsername", "alice").Return(false, nil)
	userRepo.On("ExistsByEmail", "alice@example.com").Return(false, nil)
	userRepo.On("ExistsByNickname", "alice").Return(false, nil)
	userRepo.On("CreateWithBlog",
		mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" &&
				u.Role == entity.RoleUser &&
				u.Password != "secret123"
		}),
		mock.MatchedBy(func(b *entity.Blog) bool {
			return b.Title == "alice's blog"
		}),
		mock.MatchedBy(func(c *entity.Category) bool {
			return c.Name == testDefaultCategory
		}),
	).Return(nil)

	user, err := uc.SignUp("alice", "secret123", "alice", "alice@example.com")

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	userRepo.AssertExpectations(t)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	userRepo.On("ExistsByUsername", "alice").Return(true, nil)

	_, err := uc.SignUp("alice", "secret123", "alice", "alice@example.com")

	assert.ErrorIs(t, err, apperror.ErrDuplicatedUsername)
	userRepo.AssertNotCalled(t, "CreateWithBlog", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	userRepo.On("ExistsByUsername", "alice").Return(false, nil)
	userRepo.On("ExistsByEmail", "alice@example.com").Return(true, nil)

	_, err := uc.SignUp("alice", "secret123", "alice", "alice@example.com")

	assert.ErrorIs(t, err, apperror.ErrDuplicatedEmail)
}

func TestSignIn(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.On("GetByUsername", "alice").Return(&entity.User{
		ID:       1,
		Username: "alice",
		Password: string(hashed),
		Role:     entity.RoleUser,
	}, nil)

	token, err := uc.SignIn("alice", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwt.NewService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	userRepo.On("GetByUsername", "alice").Return(&entity.User{Password: string(hashed)}, nil)

	_, err := uc.SignIn("alice", "wrong")

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestSignIn_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	userRepo.On("GetByUsername", "ghost").Return(nil, errors.New("record not found"))

	_, err := uc.SignIn("ghost", "whatever")

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCaseForTest(userRepo)

	userRepo.On("GetByID", int64(1)).Return(&entity.User{ID: 1, Username: "alice"}, nil)

	user, err := uc.Me(1)

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
