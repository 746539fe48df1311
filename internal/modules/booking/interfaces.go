package booking

import (
	"context"

	"gymdesk/internal/domain"
	"gymdesk/internal/repository"
)

// BookingRepository is the slice of the store the lifecycle manager needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	CountOverlapping(ctx context.Context, equipmentID int64, date, start, end string, excludeID int64) (int64, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
	ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error)
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
	ListDaySlots(ctx context.Context, date string) ([]repository.DaySlotRow, error)
}

// EquipmentRepository supplies the equipment list for the day report.
type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
}

// ScheduleNotifier pushes booking changes to the live schedule board.
// Notification failures never fail the booking operation.
type ScheduleNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingUpdated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error
	NotifyBookingDeleted(ctx context.Context, id int64) error
}
