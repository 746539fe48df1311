package booking

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/config"
	"gymdesk/internal/domain"
	"gymdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) CountOverlapping(ctx context.Context, equipmentID int64, date, start, end string, excludeID int64) (int64, error) {
	args := m.Called(ctx, equipmentID, date, start, end, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListDaySlots(ctx context.Context, date string) ([]repository.DaySlotRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DaySlotRow), args.Error(1)
}

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type MockScheduleNotifier struct {
	mock.Mock
}

func (m *MockScheduleNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockScheduleNotifier) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockScheduleNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockScheduleNotifier) NotifyBookingDeleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testPolicy() config.BookingPolicy {
	return config.BookingPolicy{SlotDuration: 30 * time.Minute}
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentRepository)
	mockNotifs := new(MockScheduleNotifier)

	mockBookings.On("CountOverlapping", mock.Anything, int64(3), "2026-01-05", "09:00", "09:30", int64(0)).
		Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockEquipment, mockNotifs, testPolicy())

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:    7,
		EquipmentID: 3,
		Date:        "2026-01-05",
		StartTime:   "09:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, "09:30", b.EndTime) // derived, never caller-supplied
	assert.Equal(t, domain.BookingPending, b.Status)
	mockNotifs.AssertCalled(t, "NotifyBookingCreated", mock.Anything, b)
}

func TestService_Create_WeekendRejectedBeforeAnyQuery(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	service := NewService(mockBookings, new(MockEquipmentRepository), nil, testPolicy())

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:    7,
		EquipmentID: 3,
		Date:        "2026-01-03", // Saturday
		StartTime:   "09:00",
	})

	assert.ErrorIs(t, err, ErrNotBusinessDay)
	mockBookings.AssertNotCalled(t, "CountOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_SlotTaken(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("CountOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(1), nil)

	service := NewService(mockBookings, new(MockEquipmentRepository), nil, testPolicy())

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:    7,
		EquipmentID: 3,
		Date:        "2026-01-05",
		StartTime:   "09:00",
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	assert.False(t, IsValidationError(err)) // conflict, not bad input
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_UnknownStatus(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockEquipmentRepository), nil, testPolicy())

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:    7,
		EquipmentID: 3,
		Date:        "2026-01-05",
		StartTime:   "09:00",
		Status:      "waitlisted",
	})

	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestService_Update_StatusOnlySkipsAvailability(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	stored := &domain.Booking{
		ID: 42, ClientID: 7, EquipmentID: 3,
		Date: "2026-01-05", StartTime: "09:00", EndTime: "09:30",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, new(MockEquipmentRepository), nil, testPolicy())

	newStatus := string(domain.BookingConfirmed)
	b, err := service.Update(context.Background(), 42, UpdateBookingRequest{Status: &newStatus})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	// No time/equipment/date change: the booking must never be checked
	// against its own stored interval.
	mockBookings.AssertNotCalled(t, "CountOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_SlotChangeExcludesSelf(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	stored := &domain.Booking{
		ID: 42, ClientID: 7, EquipmentID: 3,
		Date: "2026-01-05", StartTime: "09:00", EndTime: "09:30",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	mockBookings.On("CountOverlapping", mock.Anything, int64(3), "2026-01-05", "09:15", "09:45", int64(42)).
		Return(int64(0), nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, new(MockEquipmentRepository), nil, testPolicy())

	newStart := "09:15"
	b, err := service.Update(context.Background(), 42, UpdateBookingRequest{StartTime: &newStart})

	assert.NoError(t, err)
	assert.Equal(t, "09:15", b.StartTime)
	assert.Equal(t, "09:45", b.EndTime)
	mockBookings.AssertExpectations(t)
}

func TestService_Update_NothingLeavesCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	stored := &domain.Booking{
		ID: 42, ClientID: 7, EquipmentID: 3,
		Date: "2026-01-05", StartTime: "09:00", EndTime: "09:30",
		Status: domain.BookingCancelled,
	}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)

	service := NewService(mockBookings, new(MockEquipmentRepository), nil, testPolicy())

	for _, next := range []string{"pending", "confirmed"} {
		next := next
		_, err := service.Update(context.Background(), 42, UpdateBookingRequest{Status: &next})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	}
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_CancellationNotifies(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	stored := &domain.Booking{
		ID: 42, ClientID: 7, EquipmentID: 3,
		Date: "2026-01-05", StartTime: "09:00", EndTime: "09:30",
		Status: domain.BookingConfirmed,
	}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	mockNotifs := new(MockScheduleNotifier)
	mockNotifs.On("NotifyBookingCancelled", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, new(MockEquipmentRepository), mockNotifs, testPolicy())

	cancelled := string(domain.BookingCancelled)
	b, err := service.Update(context.Background(), 42, UpdateBookingRequest{Status: &cancelled})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	mockNotifs.AssertCalled(t, "NotifyBookingCancelled", mock.Anything, b)
	mockNotifs.AssertNotCalled(t, "NotifyBookingUpdated", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("Delete", mock.Anything, int64(42)).Return(nil)

	mockNotifs := new(MockScheduleNotifier)
	mockNotifs.On("NotifyBookingDeleted", mock.Anything, int64(42)).Return(nil)

	service := NewService(mockBookings, new(MockEquipmentRepository), mockNotifs, testPolicy())

	assert.NoError(t, service.Delete(context.Background(), 42))
	mockBookings.AssertExpectations(t)
	mockNotifs.AssertExpectations(t)
}

func TestService_ListByDate_BadDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockEquipmentRepository), nil, testPolicy())

	_, err := service.ListByDate(context.Background(), "05/01/2026")
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestService_DayReport_GroupsByEquipment(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentRepository)

	mockEquipment.On("List", mock.Anything).Return([]domain.Equipment{
		{ID: 1, Name: "Treadmill"},
		{ID: 2, Name: "Rowing machine"},
	}, nil)
	mockBookings.On("ListDaySlots", mock.Anything, "2026-01-05").Return([]repository.DaySlotRow{
		{EquipmentID: 1, StartTime: "09:00", EndTime: "09:30", ClientName: "Ana Pérez"},
		{EquipmentID: 1, StartTime: "10:00", EndTime: "10:30", ClientName: "Luis Gómez"},
	}, nil)

	service := NewService(mockBookings, mockEquipment, nil, testPolicy())

	report, err := service.DayReport(context.Background(), "2026-01-05")
	assert.NoError(t, err)
	assert.Len(t, report.Equipment, 2)

	treadmill := report.Equipment[0]
	assert.Equal(t, "Treadmill", treadmill.EquipmentName)
	assert.False(t, treadmill.AvailableAllDay)
	assert.Equal(t, []ReportSlot{
		{Start: "09:00", End: "09:30", Minutes: 30, ClientName: "Ana Pérez"},
		{Start: "10:00", End: "10:30", Minutes: 30, ClientName: "Luis Gómez"},
	}, treadmill.Slots)
	assert.Equal(t, "05/01/2026", report.DateDisplay)

	rowing := report.Equipment[1]
	assert.True(t, rowing.AvailableAllDay)
	assert.Empty(t, rowing.Slots)

	// Read-only: a second call with no writes in between is identical.
	again, err := service.DayReport(context.Background(), "2026-01-05")
	assert.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestService_DayReport_BadDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockEquipmentRepository), nil, testPolicy())

	_, err := service.DayReport(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrBadDate)
}
