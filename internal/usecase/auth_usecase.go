package usecase

import (
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/apperror"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	SignUp(username, password, nickname, email string) (*entity.User, error)
	SignIn(username, password string) (string, error)
	Me(userID int64) (*entity.User, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
	defaultName string
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger, defaultName string) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		logger:      logger,
		defaultName: defaultName,
	}
}

// SignUp registers a user and provisions their blog together with the
// fallback category in one transaction, so a signed-up user always has
// somewhere for posts to land.
func (uc *authUseCase) SignUp(username, password, nickname, email string) (*entity.User, error) {
	if taken, err := uc.userRepo.ExistsByUsername(username); err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	} else if taken {
		return nil, apperror.ErrDuplicatedUsername
	}
	if taken, err := uc.userRepo.ExistsByEmail(email); err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	} else if taken {
		return nil, apperror.ErrDuplicatedEmail
	}
	if taken, err := uc.userRepo.ExistsByNickname(nickname); err != nil {
		return nil, fmt.Errorf("checking nickname: %w", err)
	} else if taken {
		return nil, apperror.ErrDuplicatedNickname
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Nickname: nickname,
		Email:    email,
		Role:     entity.RoleUser,
	}
	blog := entity.DefaultBlog(user)
	fallback := &entity.Category{Name: uc.defaultName}

	if err := uc.userRepo.CreateWithBlog(user, blog, fallback); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	uc.logger.Info("User %s signed up (id=%d)", user.Username, user.ID)
	return user, nil
}

func (uc *authUseCase) SignIn(username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return "", apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	return token, nil
}

func (uc *authUseCase) Me(userID int64) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.ErrUserNotFound
	}
	return user, nil
}
