package members

import (
	"context"

	"gymdesk/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByDNI(ctx context.Context, dni string) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Client, error)
	ListActive(ctx context.Context) ([]domain.Client, error)
}
