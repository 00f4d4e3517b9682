package services

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/logger"
)

// ProjectInput carries the fields of a create or update
type ProjectInput struct {
	Title       *string
	Description *string
	Status      *models.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	MemberIDs   *[]uint
	GrantIDs    *[]uint
}

func (in ProjectInput) apply(p *models.Project) {
	setTrimmed(&p.Title, in.Title)
	setText(&p.Description, in.Description)
	set(&p.Status, in.Status)
	setTime(&p.StartDate, in.StartDate)
	setTime(&p.EndDate, in.EndDate)
	set(&p.Budget, in.Budget)
}

func validateProject(p *models.Project) error {
	return validate(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&p.Status, validation.Required, oneOf(models.ProjectStatuses)),
		validation.Field(&p.Budget, validation.Min(0.0)),
		validation.Field(&p.EndDate, notBefore(p.StartDate)),
	))
}

// Project handles project-related operations
type Project struct {
	store *repos.Store
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(store *repos.Store) *Project {
	return &Project{store: store}
}

// Create creates a new project
func (s *Project) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	p := &models.Project{Status: models.ProjectStatusPlanning}
	in.apply(p)
	if err := validateProject(p); err != nil {
		return nil, err
	}
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := s.requireRelations(ctx, tx, in); err != nil {
			return err
		}
		if err := tx.Projects.Create(ctx, p); err != nil {
			return err
		}
		return s.replaceRelations(ctx, tx, p, in)
	})
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("project created", map[string]interface{}{"project_id": p.ID, "title": p.Title})
	return p, nil
}

// Update applies in to an existing project
func (s *Project) Update(ctx context.Context, id uint, in ProjectInput) (*models.Project, error) {
	var p *models.Project
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		var err error
		if p, err = tx.Projects.Get(ctx, id); err != nil {
			return err
		}
		in.apply(p)
		if err := validateProject(p); err != nil {
			return err
		}
		if err := s.requireRelations(ctx, tx, in); err != nil {
			return err
		}
		if err := tx.Projects.Update(ctx, p); err != nil {
			return err
		}
		return s.replaceRelations(ctx, tx, p, in)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Project) requireRelations(ctx context.Context, tx *repos.Store, in ProjectInput) error {
	if err := tx.Members.RequireIDs(ctx, ids(in.MemberIDs)...); err != nil {
		return err
	}
	return tx.Grants.RequireIDs(ctx, ids(in.GrantIDs)...)
}

func (s *Project) replaceRelations(ctx context.Context, tx *repos.Store, p *models.Project, in ProjectInput) error {
	if in.MemberIDs != nil {
		if err := tx.Projects.ReplaceMembers(ctx, p, ids(in.MemberIDs)); err != nil {
			return err
		}
	}
	if in.GrantIDs != nil {
		return tx.Projects.ReplaceGrants(ctx, p, ids(in.GrantIDs))
	}
	return nil
}

// Get retrieves a project by ID
func (s *Project) Get(ctx context.Context, id uint) (*models.Project, error) {
	return s.store.Projects.Get(ctx, id)
}

// List retrieves projects matching the filter
func (s *Project) List(ctx context.Context, f repos.ProjectFilter, opts *models.ListOptions) ([]models.Project, error) {
	return s.store.Projects.List(ctx, f, opts)
}

// Delete deletes a project, keeping the records that referenced it
func (s *Project) Delete(ctx context.Context, id uint) error {
	if err := s.store.Projects.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoWithFields("project deleted", map[string]interface{}{"project_id": id})
	return nil
}

// Budget rolls up the expenses charged to the project
func (s *Project) Budget(ctx context.Context, p *models.Project) (Budget, error) {
	spent, err := s.store.Expenses.SumByProject(ctx, p.ID)
	if err != nil {
		return Budget{}, err
	}
	return NewBudget(p.Budget, spent), nil
}

// AddMember links a member to a project
func (s *Project) AddMember(ctx context.Context, projectID, memberID uint) (*models.Project, error) {
	p, err := s.store.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Members.RequireIDs(ctx, memberID); err != nil {
		return nil, err
	}
	return p, s.store.Projects.AddMember(ctx, p, memberID)
}

// RemoveMember unlinks a member from a project
func (s *Project) RemoveMember(ctx context.Context, projectID, memberID uint) (*models.Project, error) {
	p, err := s.store.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return p, s.store.Projects.RemoveMember(ctx, p, memberID)
}

// LinkGrant funds a project from a grant
func (s *Project) LinkGrant(ctx context.Context, projectID, grantID uint) (*models.Project, error) {
	p, err := s.store.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Grants.RequireIDs(ctx, grantID); err != nil {
		return nil, err
	}
	return p, s.store.Projects.LinkGrant(ctx, p, grantID)
}

// UnlinkGrant removes a grant from a project
func (s *Project) UnlinkGrant(ctx context.Context, projectID, grantID uint) (*models.Project, error) {
	p, err := s.store.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return p, s.store.Projects.UnlinkGrant(ctx, p, grantID)
}

// Members returns the members of a project
func (s *Project) Members(ctx context.Context, p *models.Project) ([]models.Member, error) {
	return s.store.Projects.Members(ctx, p)
}

// Grants returns the grants funding a project
func (s *Project) Grants(ctx context.Context, p *models.Project) ([]models.Grant, error) {
	return s.store.Projects.Grants(ctx, p)
}

// Publications returns the publications of a project
func (s *Project) Publications(ctx context.Context, p *models.Project) ([]models.Publication, error) {
	return s.store.Projects.Publications(ctx, p)
}

// Protocols returns the protocols used by a project
func (s *Project) Protocols(ctx context.Context, p *models.Project) ([]models.Protocol, error) {
	return s.store.Projects.Protocols(ctx, p)
}

// Collaborators returns the external collaborators of a project
func (s *Project) Collaborators(ctx context.Context, p *models.Project) ([]models.Collaborator, error) {
	return s.store.Projects.Collaborators(ctx, p)
}
