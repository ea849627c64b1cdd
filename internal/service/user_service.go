package service

import (
	"strings"

	"timeadventures/internal/models"
	"timeadventures/internal/repository"
)

// UserService implements the login identity upsert
type UserService struct {
	userRepo     *repository.UserRepository
	progressRepo *repository.ProgressRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
	}
}

// Login looks a user up by email, creating the account on first login and
// updating the username in place when it changed (last-write-wins). The
// response carries freshly computed stats.
func (s *UserService) Login(username, email string) (*models.User, *models.Stats, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, nil, ValidationError{Field: "username", Message: "username is required"}
	}
	if email == "" {
		return nil, nil, ValidationError{Field: "email", Message: "email is required"}
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, &StorageError{Op: "login lookup", Err: err}
	}

	if user == nil {
		user, err = s.userRepo.CreateUser(username, email)
		if err != nil {
			return nil, nil, &StorageError{Op: "create user", Err: err}
		}
	} else if user.Username != username {
		if err := s.userRepo.UpdateUsername(user.ID, username); err != nil {
			return nil, nil, &StorageError{Op: "update username", Err: err}
		}
		user.Username = username
	}

	stats, err := s.progressRepo.GetStats(user.ID)
	if err != nil {
		return nil, nil, &StorageError{Op: "login stats", Err: err}
	}

	return user, stats, nil
}
