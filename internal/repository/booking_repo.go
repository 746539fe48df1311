package repository

import (
	"context"
	"time"

	"gymdesk/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClientID    int64     `gorm:"column:client_id"`
	EquipmentID int64     `gorm:"column:equipment_id"`
	Date        string    `gorm:"column:date"`
	StartTime   string    `gorm:"column:start_time"`
	EndTime     string    `gorm:"column:end_time"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		ClientID:    m.ClientID,
		EquipmentID: m.EquipmentID,
		Date:        m.Date,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		ClientID:    b.ClientID,
		EquipmentID: b.EquipmentID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountOverlapping counts non-cancelled bookings for the equipment on
// the date whose [start_time, end_time) interval overlaps [start, end).
// Two intervals overlap iff s1 < e2 AND s2 < e1; adjacent slots do not.
// excludeID drops the row being updated from the candidate set; pass 0
// when creating. HH:MM strings compare chronologically, so the plain
// string comparison is correct on both SQLite and PostgreSQL.
func (r *BookingRepository) CountOverlapping(ctx context.Context, equipmentID int64, date, start, end string, excludeID int64) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE equipment_id = ?
  AND date = ?
  AND status <> 'cancelled'
  AND id <> ?
  AND start_time < ?
  AND ? < end_time
`
	tx := r.db.WithContext(ctx).Raw(q, equipmentID, date, excludeID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return r.list(ctx, "client_id = ?", clientID)
}

func (r *BookingRepository) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error) {
	return r.list(ctx, "equipment_id = ?", equipmentID)
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.list(ctx, "date = ?", date)
}

func (r *BookingRepository) list(ctx context.Context, cond string, arg any) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("date, start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// DaySlotRow is one occupied slot of the day report, joined with the
// client's display name.
type DaySlotRow struct {
	EquipmentID int64  `gorm:"column:equipment_id"`
	StartTime   string `gorm:"column:start_time"`
	EndTime     string `gorm:"column:end_time"`
	ClientName  string `gorm:"column:client_name"`
}

func (r *BookingRepository) ListDaySlots(ctx context.Context, date string) ([]DaySlotRow, error) {
	var rows []DaySlotRow
	q := `
SELECT b.equipment_id,
       b.start_time,
       b.end_time,
       c.first_name || ' ' || c.last_name AS client_name
FROM bookings b
JOIN clients c ON c.id = b.client_id
WHERE b.date = ?
  AND b.status <> 'cancelled'
ORDER BY b.equipment_id, b.start_time
`
	tx := r.db.WithContext(ctx).Raw(q, date).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
