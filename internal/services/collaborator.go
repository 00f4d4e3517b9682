package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// CollaboratorInput carries the fields of a create or update
type CollaboratorInput struct {
	Name        *string
	Email       *string
	Institution *string
	Expertise   *string
	Notes       *string
	ProjectIDs  *[]uint
}

func (in CollaboratorInput) apply(c *models.Collaborator) {
	setTrimmed(&c.Name, in.Name)
	setText(&c.Email, in.Email)
	setText(&c.Institution, in.Institution)
	setText(&c.Expertise, in.Expertise)
	setText(&c.Notes, in.Notes)
}

// Collaborator handles external collaborators
type Collaborator struct {
	store *repos.Store
}

// NewCollaboratorService creates a new collaborator service instance
func NewCollaboratorService(store *repos.Store) *Collaborator {
	return &Collaborator{store: store}
}

// Create creates a new collaborator
func (s *Collaborator) Create(ctx context.Context, in CollaboratorInput) (*models.Collaborator, error) {
	c := &models.Collaborator{}
	if err := s.save(ctx, c, in, true); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies in to an existing collaborator
func (s *Collaborator) Update(ctx context.Context, id uint, in CollaboratorInput) (*models.Collaborator, error) {
	c, err := s.store.Collaborators.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, c, in, false); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Collaborator) save(ctx context.Context, c *models.Collaborator, in CollaboratorInput, create bool) error {
	in.apply(c)
	err := validate(validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Email, is.EmailFormat),
	))
	if err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		var err error
		if create {
			err = tx.Collaborators.Create(ctx, c)
		} else {
			err = tx.Collaborators.Update(ctx, c)
		}
		if err != nil {
			return err
		}
		if in.ProjectIDs != nil {
			return tx.Collaborators.ReplaceProjects(ctx, c, ids(in.ProjectIDs))
		}
		return nil
	})
}

// Get retrieves a collaborator by ID
func (s *Collaborator) Get(ctx context.Context, id uint) (*models.Collaborator, error) {
	return s.store.Collaborators.Get(ctx, id)
}

// List retrieves collaborators matching the filter
func (s *Collaborator) List(ctx context.Context, f repos.CollaboratorFilter, opts *models.ListOptions) ([]models.Collaborator, error) {
	return s.store.Collaborators.List(ctx, f, opts)
}

// Delete deletes a collaborator
func (s *Collaborator) Delete(ctx context.Context, id uint) error {
	return s.store.Collaborators.Delete(ctx, id)
}

// Projects returns the projects a collaborator works on
func (s *Collaborator) Projects(ctx context.Context, c *models.Collaborator) ([]models.Project, error) {
	return s.store.Collaborators.Projects(ctx, c)
}

// Publications returns the publications a collaborator co-authored
func (s *Collaborator) Publications(ctx context.Context, c *models.Collaborator) ([]models.Publication, error) {
	return s.store.Collaborators.Publications(ctx, c)
}
