package equipment

import (
	"context"
	"errors"

	"gymdesk/internal/domain"
)

var ErrBadStatus = errors.New("unknown equipment status")

type Repository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Equipment, error)
	ListAvailable(ctx context.Context) ([]domain.Equipment, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	status := domain.EquipmentAvailable
	if req.Status != "" {
		status = domain.EquipmentStatus(req.Status)
		if !knownStatus(status) {
			return nil, ErrBadStatus
		}
	}

	e := &domain.Equipment{
		Name:        req.Name,
		Category:    req.Category,
		Status:      status,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Status != nil {
		next := domain.EquipmentStatus(*req.Status)
		if !knownStatus(next) {
			return nil, ErrBadStatus
		}
		e.Status = next
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	return s.repo.ListAvailable(ctx)
}

func knownStatus(s domain.EquipmentStatus) bool {
	switch s {
	case domain.EquipmentAvailable, domain.EquipmentMaintenance, domain.EquipmentRetired:
		return true
	}
	return false
}
