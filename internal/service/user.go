package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/internal/pkg"
)

type UserService interface {
	Register(ctx context.Context, email, name, password string) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type userService struct {
	userRepo userRepo
	auth     AuthService
}

func NewUserService(userRepo userRepo, auth AuthService) UserService {
	return &userService{
		userRepo: userRepo,
		auth:     auth,
	}
}

func (that *userService) Register(ctx context.Context, email, name, password string) (*entity.User, error) {
	_, err := that.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrEmailTaken, email)
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("could not check email: %w", err)
	}

	hash, err := that.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := &entity.User{
		ID:           pkg.GenerateUserID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	if err = that.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	return user, nil
}

func (that *userService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := that.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	if !that.auth.ComparePassword(user.PasswordHash, password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

// GetOrCreateByEmail - upserts a user identified by a verified OAuth email.
func (that *userService) GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, error) {
	user, err := that.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	user = &entity.User{
		ID:    pkg.GenerateUserID(),
		Email: email,
		Name:  name,
	}

	if err = that.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	return user, nil
}

func (that *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := that.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return user, nil
}
