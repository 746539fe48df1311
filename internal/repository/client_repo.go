package repository

import (
	"context"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) GetByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Client{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var cs []domain.Client
	if err := r.db.WithContext(ctx).Order("last_name, first_name").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *ClientRepository) ListActive(ctx context.Context) ([]domain.Client, error) {
	var cs []domain.Client
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.ClientActive).
		Order("last_name, first_name").
		Find(&cs).Error
	if err != nil {
		return nil, err
	}
	return cs, nil
}
