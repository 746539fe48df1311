package payments

import (
	"context"

	"gymdesk/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ExistsForMonth(ctx context.Context, clientID int64, month string) (bool, error)
	MarkPaid(ctx context.Context, id int64, paidAt, method, concept string) error
	ListByClient(ctx context.Context, clientID int64) ([]domain.Payment, error)
	ListByMonth(ctx context.Context, month string) ([]domain.Payment, error)
}

type ClientLister interface {
	ListActive(ctx context.Context) ([]domain.Client, error)
}
