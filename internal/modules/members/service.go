package members

import (
	"context"
	"errors"
	"strings"

	"gymdesk/internal/domain"
	"gymdesk/internal/pkg/format"

	"gorm.io/gorm"
)

type Service struct {
	clients ClientRepository
}

func NewService(clients ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	dni := strings.ToUpper(strings.TrimSpace(req.DNI))
	if err := s.checkContactFields(dni, req.Email, req.Phone); err != nil {
		return nil, err
	}

	if _, err := s.clients.GetByDNI(ctx, dni); err == nil {
		return nil, ErrDuplicateDNI
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &domain.Client{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		DNI:       dni,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		JoinedAt:  format.Today(),
		Status:    domain.ClientActive,
	}

	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		c.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Status != nil {
		next := domain.ClientStatus(*req.Status)
		if next != domain.ClientActive && next != domain.ClientInactive {
			return nil, ErrBadStatus
		}
		c.Status = next
	}

	if req.DNI != nil {
		dni := strings.ToUpper(strings.TrimSpace(*req.DNI))
		if dni != c.DNI {
			if _, err := s.clients.GetByDNI(ctx, dni); err == nil {
				return nil, ErrDuplicateDNI
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			c.DNI = dni
		}
	}

	if err := s.checkContactFields(c.DNI, c.Email, c.Phone); err != nil {
		return nil, err
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.clients.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Client, error) {
	return s.clients.ListActive(ctx)
}

// checkContactFields validates the DNI and, when present, email and
// phone. Email and phone are optional fields in the client record.
func (s *Service) checkContactFields(dni, email, phone string) error {
	if !IsValidDNI(dni) {
		return ErrBadDNI
	}
	if email != "" && !IsValidEmail(email) {
		return ErrBadEmail
	}
	if phone != "" && !IsValidPhone(phone) {
		return ErrBadPhone
	}
	return nil
}
