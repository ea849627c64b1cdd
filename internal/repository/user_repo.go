package repository

import (
	"database/sql"
	"fmt"
	"time"

	"timeadventures/internal/database"
	"timeadventures/internal/models"

	"github.com/google/uuid"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user with a generated id
func (r *UserRepository) CreateUser(username, email string) (*models.User, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO users (id, username, email)
		VALUES (?, ?, ?)
	`
	_, err := r.db.Exec(query, id, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := &models.User{
		ID:        id,
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address. Returns (nil, nil)
// when no user exists with that email.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, username, email, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by id. Returns (nil, nil) when not found.
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := `
		SELECT id, username, email, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// UpdateUsername changes a user's display name in place
func (r *UserRepository) UpdateUsername(id, username string) error {
	query := `
		UPDATE users
		SET username = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, username, id)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	return nil
}

// InsertUser adds a user with an explicit id; used by backup import
func (r *UserRepository) InsertUser(user models.User) error {
	query := `
		INSERT INTO users (id, username, email)
		VALUES (?, ?, ?)
	`
	_, err := r.db.Exec(query, user.ID, user.Username, user.Email)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetAllUsers retrieves all users, newest first
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT id, username, email, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
