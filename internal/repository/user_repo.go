package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/zahira986-id/Cat-Galery/internal/model"
)

// CreateUser inserts a new user with an already-hashed password.
// A UNIQUE violation on username or email is reported as ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	now := time.Now().Format(time.RFC3339)

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		username, email, passwordHash, now)
	if err != nil {
		if isConstraintErr(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}

	return result.LastInsertId()
}

// GetUserByEmail returns the user with the given email, or nil when absent
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}

	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?",
		email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UserExists reports whether any user already holds the given email or
// username.
func (s *Store) UserExists(ctx context.Context, username, email string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE email = ? OR username = ? LIMIT 1",
		email, username).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
