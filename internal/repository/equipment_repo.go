package repository

import (
	"context"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Equipment{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var es []domain.Equipment
	if err := r.db.WithContext(ctx).Order("name").Find(&es).Error; err != nil {
		return nil, err
	}
	return es, nil
}

func (r *EquipmentRepository) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	var es []domain.Equipment
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.EquipmentAvailable).
		Order("name").
		Find(&es).Error
	if err != nil {
		return nil, err
	}
	return es, nil
}
