package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"admin-orders-service/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrNotConfigured      = errors.New("auth: admin credentials are not configured")
)

// User is the fixed descriptor returned for the single admin account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Service interface {
	Login(username, password string) (*User, error)
}

type service struct {
	username string
	password string
}

func NewService(cfg config.AdminConfig) Service {
	return &service{
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Login checks the submitted credentials against the configured secrets.
// Usernames are compared case-insensitively after trimming whitespace on
// both sides; passwords match exactly, or via bcrypt when the configured
// secret is a bcrypt hash.
func (s *service) Login(username, password string) (*User, error) {
	if s.username == "" || s.password == "" {
		log.Error().Msg("service: admin credentials not set")
		return nil, ErrNotConfigured
	}

	submitted := strings.ToLower(strings.TrimSpace(username))
	expected := strings.ToLower(strings.TrimSpace(s.username))

	usernameOK := subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) == 1

	var passwordOK bool
	if isBcryptHash(s.password) {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	if !usernameOK || !passwordOK {
		return nil, ErrInvalidCredentials
	}

	return &User{
		ID:       1,
		Username: s.username,
		Name:     "Administrator",
		Email:    "admin@example.com",
		Role:     "admin",
	}, nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
