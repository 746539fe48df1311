package auth

import (
	"context"
	"errors"
	"strings"

	"gymdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// Service contains all business logic for staff authentication.
type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	username := normalizeUsername(req.Username)
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns a signed token. Unknown usernames and wrong passwords
// produce the same error so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, normalizeUsername(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	user, err := s.users.GetByUsername(ctx, normalizeUsername(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeUsername(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
