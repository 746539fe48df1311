package booking

import (
	"context"
	"errors"

	"gymdesk/internal/config"
	"gymdesk/internal/domain"
	"gymdesk/internal/pkg/format"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings  BookingRepository
	equipment EquipmentRepository
	notifs    ScheduleNotifier
	policy    config.BookingPolicy
}

func NewService(bookings BookingRepository, equipment EquipmentRepository, notifs ScheduleNotifier, policy config.BookingPolicy) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		notifs:    notifs,
		policy:    policy,
	}
}

// Create validates the requested slot, checks the equipment is free and
// persists the booking. The end time is always derived from the start
// and the configured slot length; callers never supply it. Validation
// failures short-circuit before any availability query runs.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	status := domain.BookingPending
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
		if !knownStatus(status) {
			return nil, ErrBadStatus
		}
	}

	end := DeriveEnd(req.StartTime, s.policy.SlotDuration)
	if err := ValidateSlot(req.Date, req.StartTime, end, s.policy); err != nil {
		return nil, err
	}

	cnt, err := s.bookings.CountOverlapping(ctx, req.EquipmentID, req.Date, req.StartTime, end, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		ClientID:    req.ClientID,
		EquipmentID: req.EquipmentID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     end,
		Status:      status,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

// Update loads the stored booking and applies the requested changes.
// When equipment, date or start time change, the slot is re-validated
// and re-checked for conflicts with the booking's own row excluded, so
// a status-only update can never collide with itself.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	equipmentID := b.EquipmentID
	if req.EquipmentID != nil {
		equipmentID = *req.EquipmentID
	}
	date := b.Date
	if req.Date != nil {
		date = *req.Date
	}
	start := b.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}

	slotChanged := equipmentID != b.EquipmentID || date != b.Date || start != b.StartTime

	if slotChanged {
		end := DeriveEnd(start, s.policy.SlotDuration)
		if err := ValidateSlot(date, start, end, s.policy); err != nil {
			return nil, err
		}

		cnt, err := s.bookings.CountOverlapping(ctx, equipmentID, date, start, end, b.ID)
		if err != nil {
			return nil, err
		}
		if cnt > 0 {
			return nil, ErrNotAvailable
		}

		b.EquipmentID = equipmentID
		b.Date = date
		b.StartTime = start
		b.EndTime = end
	}

	if req.ClientID != nil {
		b.ClientID = *req.ClientID
	}

	cancelled := false
	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		if !knownStatus(next) {
			return nil, ErrBadStatus
		}
		if !b.Status.CanTransitionTo(next) {
			return nil, ErrInvalidStatusTransition
		}
		cancelled = next == domain.BookingCancelled && b.Status != domain.BookingCancelled
		b.Status = next
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if cancelled {
			_ = s.notifs.NotifyBookingCancelled(ctx, b)
		} else {
			_ = s.notifs.NotifyBookingUpdated(ctx, b)
		}
	}

	return b, nil
}

// Delete removes the booking outright; no rule blocks deleting a
// confirmed or past booking.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingDeleted(ctx, id)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID)
}

func (s *Service) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error) {
	return s.bookings.ListByEquipment(ctx, equipmentID)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	if !IsValidDate(date) {
		return nil, ErrBadDate
	}
	return s.bookings.ListByDate(ctx, date)
}

// IsAvailable answers whether the [start, start+slot) interval is free
// for the equipment on the date, without touching the record.
func (s *Service) IsAvailable(ctx context.Context, equipmentID int64, date, start string) (bool, error) {
	end := DeriveEnd(start, s.policy.SlotDuration)
	if err := ValidateSlot(date, start, end, s.policy); err != nil {
		return false, err
	}
	cnt, err := s.bookings.CountOverlapping(ctx, equipmentID, date, start, end, 0)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// DayReport lists, per equipment item, every non-cancelled booking on
// the date sorted by start time. Equipment with no bookings is reported
// available all day. Two calls with no intervening writes return the
// same report.
func (s *Service) DayReport(ctx context.Context, date string) (*DayReport, error) {
	if !IsValidDate(date) {
		return nil, ErrBadDate
	}

	items, err := s.equipment.List(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.bookings.ListDaySlots(ctx, date)
	if err != nil {
		return nil, err
	}

	slotsByEquipment := make(map[int64][]ReportSlot, len(items))
	for _, r := range rows {
		slotsByEquipment[r.EquipmentID] = append(slotsByEquipment[r.EquipmentID], ReportSlot{
			Start:      r.StartTime,
			End:        r.EndTime,
			Minutes:    format.DurationMinutes(r.StartTime, r.EndTime),
			ClientName: r.ClientName,
		})
	}

	report := &DayReport{
		Date:        date,
		DateDisplay: format.Date(date),
		Equipment:   make([]EquipmentDayReport, 0, len(items)),
	}
	for _, e := range items {
		slots := slotsByEquipment[e.ID]
		report.Equipment = append(report.Equipment, EquipmentDayReport{
			EquipmentID:     e.ID,
			EquipmentName:   e.Name,
			AvailableAllDay: len(slots) == 0,
			Slots:           slots,
		})
	}
	return report, nil
}

func knownStatus(s domain.BookingStatus) bool {
	switch s {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled:
		return true
	}
	return false
}
