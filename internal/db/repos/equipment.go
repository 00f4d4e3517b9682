package repos

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// EquipmentFilter narrows equipment listings
type EquipmentFilter struct {
	Status    *models.EquipmentStatus
	MemberID  *uint
	ProjectID *uint
}

func (f EquipmentFilter) scopes() []Scope {
	return []Scope{
		eq("status", f.Status),
		eq("member_id", f.MemberID),
		eq("project_id", f.ProjectID),
	}
}

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	Repository[models.Equipment]
}

// NewEquipmentRepository creates a new instance of EquipmentRepository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{newRepository[models.Equipment](db, "equipment", "name", "serial_number", "location")}
}

// List retrieves equipment matching the filter, newest first
func (r *EquipmentRepository) List(ctx context.Context, f EquipmentFilter, opts *models.ListOptions) ([]models.Equipment, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// CountWhere counts equipment matching the filter
func (r *EquipmentRepository) CountWhere(ctx context.Context, f EquipmentFilter) (int64, error) {
	return r.Count(ctx, f.scopes()...)
}

// SerialTaken reports whether another item already uses the serial number
func (r *EquipmentRepository) SerialTaken(ctx context.Context, serial string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Equipment{}).
		Where("LOWER(serial_number) = ? AND id <> ?", strings.ToLower(serial), excludeID).
		Count(&count).Error
	return count > 0, err
}

// Protocols returns the protocols that use the equipment
func (r *EquipmentRepository) Protocols(ctx context.Context, e *models.Equipment) ([]models.Protocol, error) {
	var out []models.Protocol
	return out, r.related(ctx, e, "Protocols", &out)
}

// Delete removes equipment together with its bookings
func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, e *models.Equipment) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return clearAssociations(tx, e, "Protocols")
	})
}
