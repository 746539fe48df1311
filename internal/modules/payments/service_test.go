package payments

import (
	"context"
	"testing"

	"gymdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 501
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ExistsForMonth(ctx context.Context, clientID int64, month string) (bool, error) {
	args := m.Called(ctx, clientID, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) MarkPaid(ctx context.Context, id int64, paidAt, method, concept string) error {
	args := m.Called(ctx, id, paidAt, method, concept)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByMonth(ctx context.Context, month string) ([]domain.Payment, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockClientLister struct {
	mock.Mock
}

func (m *MockClientLister) ListActive(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func TestService_GenerateMonthly_SkipsExisting(t *testing.T) {
	repo := new(MockPaymentRepository)
	clients := new(MockClientLister)

	clients.On("ListActive", mock.Anything).Return([]domain.Client{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil)
	repo.On("ExistsForMonth", mock.Anything, int64(1), "2026-02").Return(false, nil)
	repo.On("ExistsForMonth", mock.Anything, int64(2), "2026-02").Return(true, nil) // already billed
	repo.On("ExistsForMonth", mock.Anything, int64(3), "2026-02").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, clients, 30)

	created, err := service.GenerateMonthly(context.Background(), "2026-02")
	assert.NoError(t, err)
	assert.Equal(t, 2, created)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestService_GenerateMonthly_BadMonth(t *testing.T) {
	service := NewService(new(MockPaymentRepository), new(MockClientLister), 30)

	_, err := service.GenerateMonthly(context.Background(), "02-2026")
	assert.ErrorIs(t, err, ErrBadMonth)
}

func TestService_MarkPaid(t *testing.T) {
	repo := new(MockPaymentRepository)
	paidAt := "2026-02-10"
	repo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Payment{ID: 7, ClientID: 1, Month: "2026-02", Fee: 30}, nil).Once()
	repo.On("MarkPaid", mock.Anything, int64(7), paidAt, "cash", "February dues").Return(nil)
	repo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Payment{ID: 7, ClientID: 1, Month: "2026-02", Fee: 30, Paid: true, PaidAt: &paidAt}, nil)

	service := NewService(repo, new(MockClientLister), 30)

	p, err := service.MarkPaid(context.Background(), 7, MarkPaidRequest{
		PaidAt: paidAt, Method: "cash", Concept: "February dues",
	})
	assert.NoError(t, err)
	assert.True(t, p.Paid)
	repo.AssertExpectations(t)
}

func TestService_MarkPaid_AlreadyPaid(t *testing.T) {
	repo := new(MockPaymentRepository)
	paidAt := "2026-02-01"
	repo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Payment{ID: 7, Paid: true, PaidAt: &paidAt}, nil)

	service := NewService(repo, new(MockClientLister), 30)

	_, err := service.MarkPaid(context.Background(), 7, MarkPaidRequest{
		PaidAt: "2026-02-10", Method: "card",
	})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateManual(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(MockClientLister), 30)

	p, err := service.CreateManual(context.Background(), CreatePaymentRequest{
		ClientID: 1, Month: "2026-02", PaidAt: "2026-02-05", Method: "card",
	})
	assert.NoError(t, err)
	assert.True(t, p.Paid)
	assert.Equal(t, 30.0, p.Fee)
	assert.Equal(t, "€30.00", View(*p).FeeFormatted)
}
