package services

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
)

// PublicationInput carries the fields of a create or update
type PublicationInput struct {
	Title           *string
	Abstract        *string
	Venue           *string
	DOI             *string
	URL             *string
	Status          *models.PublicationStatus
	PublishedAt     *time.Time
	AuthorIDs       *[]uint
	CollaboratorIDs *[]uint
	ProjectIDs      *[]uint
}

func (in PublicationInput) apply(p *models.Publication) {
	setTrimmed(&p.Title, in.Title)
	setText(&p.Abstract, in.Abstract)
	setText(&p.Venue, in.Venue)
	setText(&p.DOI, in.DOI)
	setText(&p.URL, in.URL)
	set(&p.Status, in.Status)
	setTime(&p.PublishedAt, in.PublishedAt)
}

func validatePublication(p *models.Publication) error {
	return validate(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&p.Status, validation.Required, oneOf(models.PublicationStatuses)),
		validation.Field(&p.URL, is.URL),
	))
}

// Publication handles publication-related operations
type Publication struct {
	store *repos.Store
}

// NewPublicationService creates a new publication service instance
func NewPublicationService(store *repos.Store) *Publication {
	return &Publication{store: store}
}

// Create creates a new publication
func (s *Publication) Create(ctx context.Context, in PublicationInput) (*models.Publication, error) {
	p := &models.Publication{Status: models.PublicationStatusDraft}
	if err := s.save(ctx, p, in, true); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies in to an existing publication
func (s *Publication) Update(ctx context.Context, id uint, in PublicationInput) (*models.Publication, error) {
	p, err := s.store.Publications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, p, in, false); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Publication) save(ctx context.Context, p *models.Publication, in PublicationInput, create bool) error {
	in.apply(p)
	if err := validatePublication(p); err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx *repos.Store) error {
		if p.DOI != nil {
			taken, err := tx.Publications.DOITaken(ctx, *p.DOI, p.ID)
			if err != nil {
				return err
			}
			if taken {
				return domain.Conflict("publication", "doi", strings.ToLower(*p.DOI))
			}
		}
		if err := tx.Members.RequireIDs(ctx, ids(in.AuthorIDs)...); err != nil {
			return err
		}
		if err := tx.Collaborators.RequireIDs(ctx, ids(in.CollaboratorIDs)...); err != nil {
			return err
		}
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		var err error
		if create {
			err = tx.Publications.Create(ctx, p)
		} else {
			err = tx.Publications.Update(ctx, p)
		}
		if err != nil {
			return err
		}
		if in.AuthorIDs != nil {
			if err := tx.Publications.ReplaceAuthors(ctx, p, ids(in.AuthorIDs)); err != nil {
				return err
			}
		}
		if in.CollaboratorIDs != nil {
			if err := tx.Publications.ReplaceCollaborators(ctx, p, ids(in.CollaboratorIDs)); err != nil {
				return err
			}
		}
		if in.ProjectIDs != nil {
			return tx.Publications.ReplaceProjects(ctx, p, ids(in.ProjectIDs))
		}
		return nil
	})
}

// Get retrieves a publication by ID
func (s *Publication) Get(ctx context.Context, id uint) (*models.Publication, error) {
	return s.store.Publications.Get(ctx, id)
}

// List retrieves publications matching the filter
func (s *Publication) List(ctx context.Context, f repos.PublicationFilter, opts *models.ListOptions) ([]models.Publication, error) {
	return s.store.Publications.List(ctx, f, opts)
}

// Delete deletes a publication
func (s *Publication) Delete(ctx context.Context, id uint) error {
	return s.store.Publications.Delete(ctx, id)
}

// Authors returns the member authors of a publication
func (s *Publication) Authors(ctx context.Context, p *models.Publication) ([]models.Member, error) {
	return s.store.Publications.Authors(ctx, p)
}

// Collaborators returns the external co-authors of a publication
func (s *Publication) Collaborators(ctx context.Context, p *models.Publication) ([]models.Collaborator, error) {
	return s.store.Publications.Collaborators(ctx, p)
}

// Projects returns the projects of a publication
func (s *Publication) Projects(ctx context.Context, p *models.Publication) ([]models.Project, error) {
	return s.store.Publications.Projects(ctx, p)
}
