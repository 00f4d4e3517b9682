package services

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
)

// Booking errors
var (
	ErrBookingWindow      = fmt.Errorf("%w: booking end time must be after its start time", domain.ErrValidation)
	ErrBookingMaintenance = fmt.Errorf("%w: equipment in maintenance cannot be booked", domain.ErrValidation)
	ErrBookingOverlap     = fmt.Errorf("%w: equipment is already booked for that time", domain.ErrConflict)
)

// BookingInput carries the fields of a create or update
type BookingInput struct {
	EquipmentID *uint
	MemberID    *uint
	ProjectID   *uint
	StartTime   *time.Time
	EndTime     *time.Time
	Purpose     *string
}

func (in BookingInput) apply(b *models.Booking) {
	set(&b.EquipmentID, in.EquipmentID)
	set(&b.MemberID, in.MemberID)
	setRef(&b.ProjectID, in.ProjectID)
	if in.StartTime != nil {
		b.StartTime = utc(*in.StartTime)
	}
	if in.EndTime != nil {
		b.EndTime = utc(*in.EndTime)
	}
	setText(&b.Purpose, in.Purpose)
}

// Booking handles equipment reservations
type Booking struct {
	store *repos.Store
}

// NewBookingService creates a new booking service instance
func NewBookingService(store *repos.Store) *Booking {
	return &Booking{store: store}
}

// Create reserves equipment for a member over a time window
func (s *Booking) Create(ctx context.Context, in BookingInput) (*models.Booking, error) {
	b := &models.Booking{}
	in.apply(b)
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := checkBooking(ctx, tx, b, true); err != nil {
			return err
		}
		return tx.Bookings.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update moves or edits an existing booking
func (s *Booking) Update(ctx context.Context, id uint, in BookingInput) (*models.Booking, error) {
	var b *models.Booking
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		var err error
		if b, err = tx.Bookings.Get(ctx, id); err != nil {
			return err
		}
		previous := b.EquipmentID
		in.apply(b)
		if err := checkBooking(ctx, tx, b, b.EquipmentID != previous); err != nil {
			return err
		}
		return tx.Bookings.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// checkBooking enforces the booking rules: a valid window on existing
// equipment that no other booking overlaps. Equipment in maintenance only
// rejects bookings being placed onto it.
func checkBooking(ctx context.Context, tx *repos.Store, b *models.Booking, placing bool) error {
	err := validate(validation.ValidateStruct(b,
		validation.Field(&b.EquipmentID, validation.Required),
		validation.Field(&b.MemberID, validation.Required),
		validation.Field(&b.StartTime, validation.Required),
		validation.Field(&b.EndTime, validation.Required),
	))
	if err != nil {
		return err
	}
	if !b.EndTime.After(b.StartTime) {
		return ErrBookingWindow
	}
	equipment, err := tx.Equipment.Get(ctx, b.EquipmentID)
	if err != nil {
		return err
	}
	if placing && equipment.Status == models.EquipmentStatusMaintenance {
		return ErrBookingMaintenance
	}
	if err := tx.Members.RequireIDs(ctx, b.MemberID); err != nil {
		return err
	}
	if err := tx.Projects.RequireIDs(ctx, optional(b.ProjectID)...); err != nil {
		return err
	}
	overlaps, err := tx.Bookings.Overlaps(ctx, b.EquipmentID, b.StartTime, b.EndTime, b.ID)
	if err != nil {
		return err
	}
	if overlaps {
		return ErrBookingOverlap
	}
	return nil
}

// Get retrieves a booking by ID
func (s *Booking) Get(ctx context.Context, id uint) (*models.Booking, error) {
	return s.store.Bookings.Get(ctx, id)
}

// List retrieves bookings matching the filter
func (s *Booking) List(ctx context.Context, f repos.BookingFilter, opts *models.ListOptions) ([]models.Booking, error) {
	return s.store.Bookings.List(ctx, f, opts)
}

// Delete cancels a booking
func (s *Booking) Delete(ctx context.Context, id uint) error {
	return s.store.Bookings.Delete(ctx, id)
}
