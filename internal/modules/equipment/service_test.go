package equipment

import (
	"context"
	"testing"

	"gymdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 301
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockRepository) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func TestService_Create_DefaultsToAvailable(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	e, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name:     "Treadmill 1",
		Category: "cardio",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, e.Status)
	assert.Equal(t, int64(301), e.ID)
}

func TestService_Create_UnknownStatus(t *testing.T) {
	repo := new(MockRepository)

	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name:     "Treadmill 1",
		Category: "cardio",
		Status:   "broken",
	})
	assert.ErrorIs(t, err, ErrBadStatus)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_StatusChange(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Equipment{ID: 5, Name: "Squat rack", Category: "strength", Status: domain.EquipmentAvailable}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	status := string(domain.EquipmentMaintenance)
	desc := "Cable frayed"
	e, err := service.Update(context.Background(), 5, UpdateEquipmentRequest{
		Status:      &status,
		Description: &desc,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, e.Status)
	assert.Equal(t, "Cable frayed", e.Description)
	repo.AssertExpectations(t)
}

func TestService_Update_UnknownStatus(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Equipment{ID: 5, Status: domain.EquipmentAvailable}, nil)

	service := NewService(repo)

	status := "borked"
	_, err := service.Update(context.Background(), 5, UpdateEquipmentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrBadStatus)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_ListAvailable(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAvailable", mock.Anything).Return([]domain.Equipment{
		{ID: 1, Name: "Treadmill 1", Status: domain.EquipmentAvailable},
	}, nil)

	service := NewService(repo)

	list, err := service.ListAvailable(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
