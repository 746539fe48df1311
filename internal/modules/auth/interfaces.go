package auth

import (
	"context"

	"gymdesk/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type jwtService interface {
	GenerateToken(userID int64, username string) (string, error)
}
