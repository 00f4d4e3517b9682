package services

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/logger"
)

// Equipment assignment errors
var (
	ErrDoubleAssignment       = fmt.Errorf("%w: equipment cannot be assigned to both a member and a project", domain.ErrValidation)
	ErrAssignedForMaintenance = fmt.Errorf("%w: equipment cannot be assigned while in maintenance", domain.ErrValidation)
	ErrNoAssignee             = fmt.Errorf("%w: a member or a project is required", domain.ErrValidation)
)

// Assignment is who holds a piece of equipment. At most one side is set.
type Assignment struct {
	MemberID  *uint
	ProjectID *uint
}

// Assigned reports whether anyone holds the equipment
func (a Assignment) Assigned() bool {
	return a.MemberID != nil || a.ProjectID != nil
}

// DeriveStatus computes the effective equipment status from the requested
// assignment and an optional explicit status request.
func DeriveStatus(a Assignment, requested *models.EquipmentStatus) (models.EquipmentStatus, error) {
	if a.MemberID != nil && a.ProjectID != nil {
		return "", ErrDoubleAssignment
	}
	maintenance := requested != nil && *requested == models.EquipmentStatusMaintenance
	switch {
	case maintenance && a.Assigned():
		return "", ErrAssignedForMaintenance
	case maintenance:
		return models.EquipmentStatusMaintenance, nil
	case a.Assigned():
		return models.EquipmentStatusInUse, nil
	default:
		return models.EquipmentStatusAvailable, nil
	}
}

// EquipmentInput carries the fields of a create or update. Giving MemberID or
// ProjectID replaces the current assignment; Unassign clears it.
type EquipmentInput struct {
	Name         *string
	Description  *string
	SerialNumber *string
	Location     *string
	PurchaseDate *time.Time
	Status       *models.EquipmentStatus
	MemberID     *uint
	ProjectID    *uint
	Unassign     bool
}

func (in EquipmentInput) apply(e *models.Equipment) {
	setTrimmed(&e.Name, in.Name)
	setText(&e.Description, in.Description)
	setText(&e.SerialNumber, in.SerialNumber)
	setText(&e.Location, in.Location)
	setTime(&e.PurchaseDate, in.PurchaseDate)
}

// resolve applies the assignment rules of in to e
func (in EquipmentInput) resolve(e *models.Equipment) error {
	assignment := Assignment{MemberID: e.MemberID, ProjectID: e.ProjectID}
	switch {
	case in.MemberID != nil || in.ProjectID != nil:
		assignment = Assignment{MemberID: in.MemberID, ProjectID: in.ProjectID}
	case in.Unassign:
		assignment = Assignment{}
	}

	requested := in.Status
	if requested == nil && e.Status == models.EquipmentStatusMaintenance {
		requested = &e.Status
	}
	if requested != nil && !requested.Valid() {
		return domain.Invalidf("status: must be one of %s", joinEnum(models.EquipmentStatuses))
	}

	status, err := DeriveStatus(assignment, requested)
	if err != nil {
		return err
	}
	e.MemberID, e.ProjectID, e.Status = assignment.MemberID, assignment.ProjectID, status
	return nil
}

func validateEquipment(e *models.Equipment) error {
	return validate(validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&e.SerialNumber, validation.Length(1, 100)),
	))
}

// Equipment handles equipment-related operations
type Equipment struct {
	store *repos.Store
}

// NewEquipmentService creates a new equipment service instance
func NewEquipmentService(store *repos.Store) *Equipment {
	return &Equipment{store: store}
}

// Create stores new equipment with its status derived from the assignment
func (s *Equipment) Create(ctx context.Context, in EquipmentInput) (*models.Equipment, error) {
	e := &models.Equipment{}
	in.apply(e)
	if err := in.resolve(e); err != nil {
		return nil, err
	}
	if err := s.save(ctx, e, true); err != nil {
		return nil, err
	}
	logger.InfoWithFields("equipment created", map[string]interface{}{"equipment_id": e.ID, "status": e.Status})
	return e, nil
}

// Update applies in to existing equipment and re-derives its status
func (s *Equipment) Update(ctx context.Context, id uint, in EquipmentInput) (*models.Equipment, error) {
	e, err := s.store.Equipment.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := in.resolve(e); err != nil {
		return nil, err
	}
	if err := s.save(ctx, e, false); err != nil {
		return nil, err
	}
	return e, nil
}

// Assign gives the equipment to a member or a project
func (s *Equipment) Assign(ctx context.Context, id uint, memberID, projectID *uint) (*models.Equipment, error) {
	if memberID == nil && projectID == nil {
		return nil, ErrNoAssignee
	}
	e, err := s.Update(ctx, id, EquipmentInput{MemberID: memberID, ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("equipment assigned", map[string]interface{}{"equipment_id": id, "status": e.Status})
	return e, nil
}

// Release clears the assignment of the equipment
func (s *Equipment) Release(ctx context.Context, id uint) (*models.Equipment, error) {
	return s.Update(ctx, id, EquipmentInput{Unassign: true})
}

// SetMaintenance puts unassigned equipment into maintenance or takes it out again
func (s *Equipment) SetMaintenance(ctx context.Context, id uint, maintenance bool) (*models.Equipment, error) {
	status := models.EquipmentStatusAvailable
	if maintenance {
		status = models.EquipmentStatusMaintenance
	}
	return s.Update(ctx, id, EquipmentInput{Status: &status})
}

func (s *Equipment) save(ctx context.Context, e *models.Equipment, create bool) error {
	if err := validateEquipment(e); err != nil {
		return err
	}
	if e.SerialNumber != nil {
		taken, err := s.store.Equipment.SerialTaken(ctx, *e.SerialNumber, e.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflict("equipment", "serial number", *e.SerialNumber)
		}
	}
	if err := s.store.Members.RequireIDs(ctx, optional(e.MemberID)...); err != nil {
		return err
	}
	if err := s.store.Projects.RequireIDs(ctx, optional(e.ProjectID)...); err != nil {
		return err
	}
	if create {
		return s.store.Equipment.Create(ctx, e)
	}
	return s.store.Equipment.Update(ctx, e)
}

// Get retrieves equipment by ID
func (s *Equipment) Get(ctx context.Context, id uint) (*models.Equipment, error) {
	return s.store.Equipment.Get(ctx, id)
}

// List retrieves equipment matching the filter
func (s *Equipment) List(ctx context.Context, f repos.EquipmentFilter, opts *models.ListOptions) ([]models.Equipment, error) {
	return s.store.Equipment.List(ctx, f, opts)
}

// Delete deletes equipment and its bookings
func (s *Equipment) Delete(ctx context.Context, id uint) error {
	if err := s.store.Equipment.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoWithFields("equipment deleted", map[string]interface{}{"equipment_id": id})
	return nil
}

// Protocols returns the protocols that use the equipment
func (s *Equipment) Protocols(ctx context.Context, e *models.Equipment) ([]models.Protocol, error) {
	return s.store.Equipment.Protocols(ctx, e)
}
