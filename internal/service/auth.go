package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zahira986-id/Cat-Galery/internal/model"
	"github.com/zahira986-id/Cat-Galery/internal/pkg/token"
	"github.com/zahira986-id/Cat-Galery/internal/repository"
)

var (
	ErrValidation = errors.New("missing required field")
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password, so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Auth implements registration and login
type Auth struct {
	store  *repository.Store
	tokens *token.Manager
	cost   int
}

// NewAuth constructs an Auth service. A non-positive cost falls back
// to the bcrypt default.
func NewAuth(store *repository.Store, tokens *token.Manager, cost int) *Auth {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Auth{store: store, tokens: tokens, cost: cost}
}

// Register creates a new account with a bcrypt-hashed password.
// The existence check and the insert are not atomic; the UNIQUE
// constraints on username and email are the store-level backstop, and
// a violation there is reported the same way as the check.
func (s *Auth) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrValidation
	}

	exists, err := s.store.UserExists(ctx, username, email)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.store.CreateUser(ctx, username, email, string(hash)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password produce the identical ErrInvalidCredentials;
// store failures stay distinct so they surface as server errors.
func (s *Auth) Login(ctx context.Context, email, password string) (string, *model.PublicUser, error) {
	if email == "" || password == "" {
		return "", nil, ErrValidation
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return tok, &model.PublicUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
