package services

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/logger"
)

// GrantInput carries the fields of a create or update
type GrantInput struct {
	Title           *string
	Agency          *string
	ReferenceNumber *string
	Description     *string
	Budget          *float64
	Status          *models.GrantStatus
	StartDate       *time.Time
	EndDate         *time.Time
	Deadline        *time.Time
	ProjectIDs      *[]uint
}

func (in GrantInput) apply(g *models.Grant) {
	setTrimmed(&g.Title, in.Title)
	setTrimmed(&g.Agency, in.Agency)
	setText(&g.ReferenceNumber, in.ReferenceNumber)
	setText(&g.Description, in.Description)
	set(&g.Budget, in.Budget)
	set(&g.Status, in.Status)
	setTime(&g.StartDate, in.StartDate)
	setTime(&g.EndDate, in.EndDate)
	setTime(&g.Deadline, in.Deadline)
}

func validateGrant(g *models.Grant) error {
	return validate(validation.ValidateStruct(g,
		validation.Field(&g.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&g.Agency, validation.Required, validation.Length(1, 200)),
		validation.Field(&g.Budget, validation.Min(0.0)),
		validation.Field(&g.Status, validation.Required, oneOf(models.GrantStatuses)),
		validation.Field(&g.EndDate, notBefore(g.StartDate)),
	))
}

// Grant handles grant-related operations
type Grant struct {
	store *repos.Store
}

// NewGrantService creates a new grant service instance
func NewGrantService(store *repos.Store) *Grant {
	return &Grant{store: store}
}

// Create creates a new grant
func (s *Grant) Create(ctx context.Context, in GrantInput) (*models.Grant, error) {
	g := &models.Grant{Status: models.GrantStatusPlanning}
	in.apply(g)
	if err := validateGrant(g); err != nil {
		return nil, err
	}
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		if err := tx.Grants.Create(ctx, g); err != nil {
			return err
		}
		if in.ProjectIDs != nil {
			return tx.Grants.ReplaceProjects(ctx, g, ids(in.ProjectIDs))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("grant created", map[string]interface{}{"grant_id": g.ID, "agency": g.Agency})
	return g, nil
}

// Update applies in to an existing grant
func (s *Grant) Update(ctx context.Context, id uint, in GrantInput) (*models.Grant, error) {
	var g *models.Grant
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		var err error
		if g, err = tx.Grants.Get(ctx, id); err != nil {
			return err
		}
		in.apply(g)
		if err := validateGrant(g); err != nil {
			return err
		}
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		if err := tx.Grants.Update(ctx, g); err != nil {
			return err
		}
		if in.ProjectIDs != nil {
			return tx.Grants.ReplaceProjects(ctx, g, ids(in.ProjectIDs))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Get retrieves a grant by ID
func (s *Grant) Get(ctx context.Context, id uint) (*models.Grant, error) {
	return s.store.Grants.Get(ctx, id)
}

// List retrieves grants matching the filter
func (s *Grant) List(ctx context.Context, f repos.GrantFilter, opts *models.ListOptions) ([]models.Grant, error) {
	return s.store.Grants.List(ctx, f, opts)
}

// Delete deletes a grant; its expenses stay with no grant
func (s *Grant) Delete(ctx context.Context, id uint) error {
	if err := s.store.Grants.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoWithFields("grant deleted", map[string]interface{}{"grant_id": id})
	return nil
}

// Budget rolls up the expenses charged to the grant
func (s *Grant) Budget(ctx context.Context, g *models.Grant) (Budget, error) {
	spent, err := s.store.Expenses.SumByGrant(ctx, g.ID)
	if err != nil {
		return Budget{}, err
	}
	return NewBudget(g.Budget, spent), nil
}

// Projects returns the projects funded by a grant
func (s *Grant) Projects(ctx context.Context, g *models.Grant) ([]models.Project, error) {
	return s.store.Grants.Projects(ctx, g)
}
