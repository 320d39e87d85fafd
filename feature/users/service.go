package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pantry-manager/core/server"
	"pantry-manager/feature/users/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUserExists is returned when the username is already taken.
	ErrUserExists = errors.New("username already taken")
	// ErrInvalidCredentials is returned for a bad username/password pair.
	// Login deliberately doesn't distinguish which half was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMissingFields is returned when username or password is blank.
	ErrMissingFields = errors.New("username and password are required")
)

// Service handles account operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	cfg    server.Config
}

// NewService creates a new users service.
func NewService(db *gorm.DB, logger *zap.Logger, cfg server.Config) *Service {
	return &Service{db: db, logger: logger, cfg: cfg}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("username", username))
	return nil
}

// Login verifies the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingFields
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// issueToken signs an HS256 token whose subject is the username.
func (s *Service) issueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.cfg.TokenTTL()).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
