package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// ProtocolFilter narrows protocol listings
type ProtocolFilter struct {
	Category    *string
	AuthorID    *uint
	ProjectID   *uint
	EquipmentID *uint
}

func (f ProtocolFilter) scopes() []Scope {
	return []Scope{
		eq("category", f.Category),
		eq("author_id", f.AuthorID),
		inJoin("protocol_projects", "protocol_id", "project_id", f.ProjectID),
		inJoin("protocol_equipment", "protocol_id", "equipment_id", f.EquipmentID),
	}
}

// ProtocolRepository handles database operations for protocols
type ProtocolRepository struct {
	Repository[models.Protocol]
}

// NewProtocolRepository creates a new instance of ProtocolRepository
func NewProtocolRepository(db *gorm.DB) *ProtocolRepository {
	return &ProtocolRepository{newRepository[models.Protocol](db, "protocol", "title", "category")}
}

// List retrieves protocols matching the filter, newest first
func (r *ProtocolRepository) List(ctx context.Context, f ProtocolFilter, opts *models.ListOptions) ([]models.Protocol, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// Projects returns the projects using a protocol
func (r *ProtocolRepository) Projects(ctx context.Context, p *models.Protocol) ([]models.Project, error) {
	var out []models.Project
	return out, r.related(ctx, p, "Projects", &out)
}

// Equipment returns the equipment a protocol requires
func (r *ProtocolRepository) Equipment(ctx context.Context, p *models.Protocol) ([]models.Equipment, error) {
	var out []models.Equipment
	return out, r.related(ctx, p, "Equipment", &out)
}

// ReplaceProjects sets the protocol's projects to exactly projectIDs
func (r *ProtocolRepository) ReplaceProjects(ctx context.Context, p *models.Protocol, projectIDs []uint) error {
	return r.replaceLinks(ctx, protocolProjects, p.ID, projectIDs)
}

// ReplaceEquipment sets the protocol's equipment to exactly equipmentIDs
func (r *ProtocolRepository) ReplaceEquipment(ctx context.Context, p *models.Protocol, equipmentIDs []uint) error {
	return r.replaceLinks(ctx, protocolEquipment, p.ID, equipmentIDs)
}

// Delete removes a protocol and its project and equipment links
func (r *ProtocolRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, p *models.Protocol) error {
		return clearAssociations(tx, p, "Projects", "Equipment")
	})
}
