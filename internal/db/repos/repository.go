// Package repos provides database repository implementations
package repos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

// Scope narrows a query. Filters are expressed as scopes so that List and
// Count share the same WHERE clause.
type Scope = func(*gorm.DB) *gorm.DB

// Repository provides the CRUD operations shared by every entity repository
type Repository[T any] struct {
	db     *gorm.DB
	entity string
	search []string
}

func newRepository[T any](db *gorm.DB, entity string, searchColumns ...string) Repository[T] {
	return Repository[T]{db: db, entity: entity, search: searchColumns}
}

// Create inserts a new record. Associations are never written here; they are
// managed explicitly through the association helpers.
func (r *Repository[T]) Create(ctx context.Context, m *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
	return r.translate(err, 0)
}

// Get retrieves a record by ID
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var m T
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.translate(err, id)
	}
	return &m, nil
}

// Update saves every column of the record
func (r *Repository[T]) Update(ctx context.Context, m *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
	return r.translate(err, 0)
}

// Delete removes a record by ID, returning a not-found error if nothing was deleted
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, nil)
}

// FindByIDs retrieves every record whose ID is in ids
func (r *Repository[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	var out []T
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&out).Error
	return out, err
}

// RequireIDs returns a not-found error naming the first ID that does not exist
func (r *Repository[T]) RequireIDs(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	var found []uint
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return err
	}
	present := make(map[uint]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			return domain.NotFound(r.entity, id)
		}
	}
	return nil
}

// Count returns the number of records matching the scopes
func (r *Repository[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&count).Error
	return count, err
}

// list returns a page of records, newest first
func (r *Repository[T]) list(ctx context.Context, opts *models.ListOptions, scopes ...Scope) ([]T, error) {
	o := opts.Normalize()
	var out []T
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Scopes(searchScope(o.Search, r.search...)).
		Order("id DESC").
		Limit(o.Limit).Offset(o.Offset).
		Find(&out).Error
	return out, err
}

// related loads the named association of owner into out
func (r *Repository[T]) related(ctx context.Context, owner *T, name string, out interface{}) error {
	return r.db.WithContext(ctx).Model(owner).Association(name).Find(out)
}

// joinTable describes a many-to-many link table from the owner's side
type joinTable struct {
	table string
	owner string
	other string
}

func (j joinTable) reverse() joinTable {
	return joinTable{table: j.table, owner: j.other, other: j.owner}
}

// replaceLinks makes ids the exact set linked to ownerID
func (r *Repository[T]) replaceLinks(ctx context.Context, j joinTable, ownerID uint, ids []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", j.table, j.owner), ownerID).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := insertLink(tx, j, ownerID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository[T]) addLink(ctx context.Context, j joinTable, ownerID, id uint) error {
	return insertLink(r.db.WithContext(ctx), j, ownerID, id)
}

func (r *Repository[T]) removeLink(ctx context.Context, j joinTable, ownerID, id uint) error {
	return r.db.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?", j.table, j.owner, j.other), ownerID, id).Error
}

func insertLink(tx *gorm.DB, j joinTable, ownerID, id uint) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Table(j.table).Create(map[string]interface{}{
		j.owner: ownerID,
		j.other: id,
	}).Error
}

// deleteWith loads the record, runs prepare and deletes it in one transaction
func (r *Repository[T]) deleteWith(ctx context.Context, id uint, prepare func(tx *gorm.DB, m *T) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m T
		if err := tx.First(&m, id).Error; err != nil {
			return r.translate(err, id)
		}
		if prepare != nil {
			if err := prepare(tx, &m); err != nil {
				return err
			}
		}
		return tx.Delete(&m).Error
	})
}

func (r *Repository[T]) translate(err error, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(r.entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %w", r.entity, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", r.entity, err)
	}
}

func clearAssociations(tx *gorm.DB, owner interface{}, names ...string) error {
	for _, name := range names {
		if err := tx.Model(owner).Association(name).Clear(); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

func detach(tx *gorm.DB, model interface{}, column string, id uint) error {
	return tx.Model(model).Where(column+" = ?", id).Update(column, nil).Error
}

// searchScope matches term case-insensitively against any of the columns
func searchScope(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(term) + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func eq[V any](column string, v *V) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where(column+" = ?", *v)
	}
}

// inJoin keeps rows whose ID appears in a join table next to the given owner ID
func inJoin(table, column, ownerColumn string, ownerID *uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == nil {
			return db
		}
		return db.Where(fmt.Sprintf("id IN (SELECT %s FROM %s WHERE %s = ?)", column, table, ownerColumn), *ownerID)
	}
}

// window keeps rows whose [startCol, endCol] interval touches [from, to]
func window(startCol, endCol string, from, to *time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(fmt.Sprintf("COALESCE(%s, %s) >= ?", endCol, startCol), from.UTC())
		}
		if to != nil {
			db = db.Where(startCol+" <= ?", to.UTC())
		}
		return db
	}
}

var (
	projectMembers           = joinTable{"project_members", "project_id", "member_id"}
	projectGrants            = joinTable{"project_grants", "project_id", "grant_id"}
	eventAttendees           = joinTable{"event_attendees", "event_id", "member_id"}
	publicationAuthors       = joinTable{"publication_authors", "publication_id", "member_id"}
	publicationCollaborators = joinTable{"publication_collaborators", "publication_id", "collaborator_id"}
	publicationProjects      = joinTable{"publication_projects", "publication_id", "project_id"}
	collaboratorProjects     = joinTable{"collaborator_projects", "collaborator_id", "project_id"}
	protocolProjects         = joinTable{"protocol_projects", "protocol_id", "project_id"}
	protocolEquipment        = joinTable{"protocol_equipment", "protocol_id", "equipment_id"}
)
