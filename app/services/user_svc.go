package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo    repositories.UserRepositoryImpl
	addressRepo repositories.AddressRepository
	logger      *zap.Logger
	cost        int
}

func NewUserService(userRepo repositories.UserRepositoryImpl, addressRepo repositories.AddressRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		logger:      logger,
		cost:        bcrypt.DefaultCost,
	}
}

// Register validates the input, rejects a taken email and stores the user with
// a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, in schemas.UserCreate) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, repositories.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := in.ToModel(string(hash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in schemas.UserUpdate) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	in.ApplyTo(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return user, nil
}

// AddAddress stores a new address. The first address of a user always becomes
// the default one.
func (s *UserService) AddAddress(ctx context.Context, userID uint, in schemas.AddressCreate) (*models.Address, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	address := in.ToModel(userID)
	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}
