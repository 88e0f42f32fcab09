package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// DefaultBcryptCost is the work factor used for stored password hashes.
const DefaultBcryptCost = 12

// userService is the concrete implementation of UserService.
// It handles registration with duplicate checks, bcrypt password hashing and
// credential verification on top of a UserRepository.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// cost is the bcrypt work factor.
	cost int

	// dummyHash is compared against when the email is unknown so that both
	// login failure paths spend the same bcrypt time.
	dummyHash     []byte
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewUserService constructs a UserService hashing with [DefaultBcryptCost].
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return newUserService(userRepository, DefaultBcryptCost, logger)
}

func newUserService(userRepository store.UserRepository, cost int, logger *logger.Logger) *userService {
	return &userService{
		userRepository: userRepository,
		cost:           cost,
		logger:         logger,
	}
}

// Register creates a new account.
//
// The email and username lookups run concurrently; an existing email wins
// over an existing username. The password is stored as a bcrypt hash.
//
// Returns the persisted user or:
//   - ErrEmailTaken / ErrUsernameTaken when the lookups find a match.
//   - ErrUserAlreadyExists when a concurrent registration wins the race and
//     the unique constraint rejects the insert.
//   - a wrapped storage error otherwise.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	var emailTaken, usernameTaken bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emailTaken, err = s.exists(gctx, s.userRepository.FindUserByEmail, req.Email)
		return err
	})
	g.Go(func() error {
		var err error
		usernameTaken, err = s.exists(gctx, s.userRepository.FindUserByUsername, req.Username)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Err(err).Msg("user lookup before registration failed")
		return models.User{}, fmt.Errorf("user lookup before registration failed: %w", err)
	}

	switch {
	case emailTaken:
		return models.User{}, ErrEmailTaken
	case usernameTaken:
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both return ErrInvalidCredentials
// after one bcrypt comparison each.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.getDummyHash(), []byte(req.Password))
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.PasswordHash = ""
	return foundUser, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	deleted, err := s.userRepository.DeleteUser(ctx, id)
	switch {
	case err == nil:
		return deleted, nil
	case errors.Is(err, store.ErrNotFound):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrReferenced):
		return models.User{}, ErrUserReferenced
	default:
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("deleting user failed")
		return models.User{}, fmt.Errorf("deleting user failed: %w", err)
	}
}

// exists runs find and turns store.ErrNotFound into false.
func (s *userService) exists(ctx context.Context, find func(context.Context, string) (models.User, error), value string) (bool, error) {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *userService) getDummyHash() []byte {
	s.dummyHashOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("catalog-api-dummy-password"), s.cost)
	})
	return s.dummyHash
}
