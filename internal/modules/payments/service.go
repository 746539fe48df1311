package payments

import (
	"context"
	"regexp"

	"gymdesk/internal/domain"
	"gymdesk/internal/pkg/format"
)

var (
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type Service struct {
	payments PaymentRepository
	clients  ClientLister
	fee      float64
}

func NewService(payments PaymentRepository, clients ClientLister, fee float64) *Service {
	return &Service{
		payments: payments,
		clients:  clients,
		fee:      fee,
	}
}

// GenerateMonthly creates one unpaid due per active client for the
// "YYYY-MM" month, skipping clients that already have a payment for
// that month. Returns how many dues were created.
func (s *Service) GenerateMonthly(ctx context.Context, month string) (int, error) {
	if !monthRe.MatchString(month) {
		return 0, ErrBadMonth
	}

	clients, err := s.clients.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	generatedAt := format.Today()
	created := 0
	for _, c := range clients {
		exists, err := s.payments.ExistsForMonth(ctx, c.ID, month)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		p := &domain.Payment{
			ClientID:    c.ID,
			Month:       month,
			GeneratedAt: generatedAt,
			Paid:        false,
			Fee:         s.fee,
		}
		if err := s.payments.Create(ctx, p); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// MarkPaid records the payment date, method and concept for a due.
func (s *Service) MarkPaid(ctx context.Context, id int64, req MarkPaidRequest) (*domain.Payment, error) {
	if !dateRe.MatchString(req.PaidAt) {
		return nil, ErrBadDate
	}

	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Paid {
		return nil, ErrAlreadyPaid
	}

	if err := s.payments.MarkPaid(ctx, id, req.PaidAt, req.Method, req.Concept); err != nil {
		return nil, err
	}
	return s.payments.GetByID(ctx, id)
}

// CreateManual records a payment made on the spot, already paid.
func (s *Service) CreateManual(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if !monthRe.MatchString(req.Month) {
		return nil, ErrBadMonth
	}
	if !dateRe.MatchString(req.PaidAt) {
		return nil, ErrBadDate
	}

	paidAt := req.PaidAt
	p := &domain.Payment{
		ClientID:    req.ClientID,
		Month:       req.Month,
		GeneratedAt: req.PaidAt,
		Paid:        true,
		PaidAt:      &paidAt,
		Fee:         s.fee,
		Method:      req.Method,
		Concept:     req.Concept,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Payment, error) {
	return s.payments.ListByClient(ctx, clientID)
}

func (s *Service) ListByMonth(ctx context.Context, month string) ([]domain.Payment, error) {
	if !monthRe.MatchString(month) {
		return nil, ErrBadMonth
	}
	return s.payments.ListByMonth(ctx, month)
}

// View shapes a payment for display, with the fee formatted as "€XX.XX".
func View(p domain.Payment) PaymentView {
	return PaymentView{
		ID:           p.ID,
		ClientID:     p.ClientID,
		Month:        p.Month,
		GeneratedAt:  p.GeneratedAt,
		Paid:         p.Paid,
		PaidAt:       p.PaidAt,
		Fee:          p.Fee,
		FeeFormatted: format.Fee(p.Fee),
		Method:       p.Method,
		Concept:      p.Concept,
	}
}

// Views maps a payment list for display.
func Views(ps []domain.Payment) []PaymentView {
	out := make([]PaymentView, 0, len(ps))
	for _, p := range ps {
		out = append(out, View(p))
	}
	return out
}
