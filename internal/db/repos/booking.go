package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// BookingFilter narrows booking listings. From and To select bookings whose
// window touches the range.
type BookingFilter struct {
	EquipmentID *uint
	MemberID    *uint
	ProjectID   *uint
	From        *time.Time
	To          *time.Time
}

func (f BookingFilter) scopes() []Scope {
	return []Scope{
		eq("equipment_id", f.EquipmentID),
		eq("member_id", f.MemberID),
		eq("project_id", f.ProjectID),
		window("start_time", "end_time", f.From, f.To),
	}
}

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	Repository[models.Booking]
}

// NewBookingRepository creates a new instance of BookingRepository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{newRepository[models.Booking](db, "booking", "purpose")}
}

// List retrieves bookings matching the filter, newest first
func (r *BookingRepository) List(ctx context.Context, f BookingFilter, opts *models.ListOptions) ([]models.Booking, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// Overlaps reports whether another booking of the equipment intersects [start, end).
// excludeID skips the booking being moved.
func (r *BookingRepository) Overlaps(ctx context.Context, equipmentID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("equipment_id = ? AND id <> ?", equipmentID, excludeID).
		Where("start_time < ? AND end_time > ?", end.UTC(), start.UTC()).
		Count(&count).Error
	return count > 0, err
}

// Upcoming returns bookings that have not ended yet, soonest first
func (r *BookingRepository) Upcoming(ctx context.Context, now time.Time, limit int) ([]models.Booking, error) {
	var out []models.Booking
	err := r.db.WithContext(ctx).
		Where("end_time > ?", now.UTC()).
		Order("start_time ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
