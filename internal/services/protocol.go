package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// ProtocolInput carries the fields of a create or update
type ProtocolInput struct {
	Title        *string
	Description  *string
	Category     *string
	Version      *string
	Content      *string
	AuthorID     *uint
	ProjectIDs   *[]uint
	EquipmentIDs *[]uint
}

func (in ProtocolInput) apply(p *models.Protocol) {
	setTrimmed(&p.Title, in.Title)
	setText(&p.Description, in.Description)
	setText(&p.Category, in.Category)
	setTrimmed(&p.Version, in.Version)
	setText(&p.Content, in.Content)
	setRef(&p.AuthorID, in.AuthorID)
}

// Protocol handles lab protocols
type Protocol struct {
	store *repos.Store
}

// NewProtocolService creates a new protocol service instance
func NewProtocolService(store *repos.Store) *Protocol {
	return &Protocol{store: store}
}

// Create creates a new protocol at version 1.0 unless one is given
func (s *Protocol) Create(ctx context.Context, in ProtocolInput) (*models.Protocol, error) {
	p := &models.Protocol{Version: models.DefaultProtocolVersion}
	if err := s.save(ctx, p, in, true); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies in to an existing protocol
func (s *Protocol) Update(ctx context.Context, id uint, in ProtocolInput) (*models.Protocol, error) {
	p, err := s.store.Protocols.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, p, in, false); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Protocol) save(ctx context.Context, p *models.Protocol, in ProtocolInput, create bool) error {
	in.apply(p)
	err := validate(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&p.Version, validation.Required, validation.Length(1, 32)),
	))
	if err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := tx.Members.RequireIDs(ctx, optional(p.AuthorID)...); err != nil {
			return err
		}
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		if err := tx.Equipment.RequireIDs(ctx, ids(in.EquipmentIDs)...); err != nil {
			return err
		}
		var err error
		if create {
			err = tx.Protocols.Create(ctx, p)
		} else {
			err = tx.Protocols.Update(ctx, p)
		}
		if err != nil {
			return err
		}
		if in.ProjectIDs != nil {
			if err := tx.Protocols.ReplaceProjects(ctx, p, ids(in.ProjectIDs)); err != nil {
				return err
			}
		}
		if in.EquipmentIDs != nil {
			return tx.Protocols.ReplaceEquipment(ctx, p, ids(in.EquipmentIDs))
		}
		return nil
	})
}

// Get retrieves a protocol by ID
func (s *Protocol) Get(ctx context.Context, id uint) (*models.Protocol, error) {
	return s.store.Protocols.Get(ctx, id)
}

// List retrieves protocols matching the filter
func (s *Protocol) List(ctx context.Context, f repos.ProtocolFilter, opts *models.ListOptions) ([]models.Protocol, error) {
	return s.store.Protocols.List(ctx, f, opts)
}

// Delete deletes a protocol
func (s *Protocol) Delete(ctx context.Context, id uint) error {
	return s.store.Protocols.Delete(ctx, id)
}

// Projects returns the projects using a protocol
func (s *Protocol) Projects(ctx context.Context, p *models.Protocol) ([]models.Project, error) {
	return s.store.Protocols.Projects(ctx, p)
}

// Equipment returns the equipment a protocol requires
func (s *Protocol) Equipment(ctx context.Context, p *models.Protocol) ([]models.Equipment, error) {
	return s.store.Protocols.Equipment(ctx, p)
}
