package repository

import (
	"context"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsForMonth reports whether the client already has a due generated
// for the "YYYY-MM" month, paid or not.
func (r *PaymentRepository) ExistsForMonth(ctx context.Context, clientID int64, month string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("client_id = ? AND month = ?", clientID, month).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, id int64, paidAt, method, concept string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"paid":    true,
			"paid_at": paidAt,
			"method":  method,
			"concept": concept,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Payment, error) {
	var ps []domain.Payment
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("month DESC").
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PaymentRepository) ListByMonth(ctx context.Context, month string) ([]domain.Payment, error) {
	var ps []domain.Payment
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("client_id").
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}
