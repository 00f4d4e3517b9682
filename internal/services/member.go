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
	"github.com/labtrack/labtrack/internal/logger"
)

// MemberInput carries the fields of a create or update. Nil fields are left
// unchanged; ProjectIDs, when set, replaces the member's projects.
type MemberInput struct {
	Name              *string
	Email             *string
	Role              *models.MemberRole
	Status            *models.MemberStatus
	Title             *string
	Phone             *string
	Bio               *string
	AvatarURL         *string
	ResearchInterests *string
	JoinedAt          *time.Time
	ProjectIDs        *[]uint
}

func (in MemberInput) apply(m *models.Member) {
	setTrimmed(&m.Name, in.Name)
	if in.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	set(&m.Role, in.Role)
	set(&m.Status, in.Status)
	setText(&m.Title, in.Title)
	setText(&m.Phone, in.Phone)
	setText(&m.Bio, in.Bio)
	setText(&m.AvatarURL, in.AvatarURL)
	setText(&m.ResearchInterests, in.ResearchInterests)
	setTime(&m.JoinedAt, in.JoinedAt)
}

func validateMember(m *models.Member) error {
	return validate(validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Role, validation.Required, oneOf(models.MemberRoles)),
		validation.Field(&m.Status, validation.Required, oneOf(models.MemberStatuses)),
		validation.Field(&m.AvatarURL, is.URL),
	))
}

// Member handles member-related operations
type Member struct {
	store *repos.Store
}

// NewMemberService creates a new member service instance
func NewMemberService(store *repos.Store) *Member {
	return &Member{store: store}
}

// Create validates and stores a new member
func (s *Member) Create(ctx context.Context, in MemberInput) (*models.Member, error) {
	m := &models.Member{Role: models.MemberRoleOther, Status: models.MemberStatusActive}
	in.apply(m)
	if err := validateMember(m); err != nil {
		return nil, err
	}
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := checkMemberEmail(ctx, tx, m); err != nil {
			return err
		}
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		if err := tx.Members.Create(ctx, m); err != nil {
			return err
		}
		if in.ProjectIDs != nil {
			return tx.Members.ReplaceProjects(ctx, m, ids(in.ProjectIDs))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("member created", map[string]interface{}{"member_id": m.ID, "role": m.Role})
	return m, nil
}

// Update applies in to an existing member
func (s *Member) Update(ctx context.Context, id uint, in MemberInput) (*models.Member, error) {
	var m *models.Member
	err := s.store.Transaction(ctx, func(tx *repos.Store) error {
		var err error
		if m, err = tx.Members.Get(ctx, id); err != nil {
			return err
		}
		in.apply(m)
		if err := validateMember(m); err != nil {
			return err
		}
		if err := checkMemberEmail(ctx, tx, m); err != nil {
			return err
		}
		if err := tx.Projects.RequireIDs(ctx, ids(in.ProjectIDs)...); err != nil {
			return err
		}
		if err := tx.Members.Update(ctx, m); err != nil {
			return err
		}
		if in.ProjectIDs != nil {
			return tx.Members.ReplaceProjects(ctx, m, ids(in.ProjectIDs))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func checkMemberEmail(ctx context.Context, tx *repos.Store, m *models.Member) error {
	taken, err := tx.Members.EmailTaken(ctx, m.Email, m.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflict("member", "email", m.Email)
	}
	return nil
}

// Get retrieves a member by ID
func (s *Member) Get(ctx context.Context, id uint) (*models.Member, error) {
	return s.store.Members.Get(ctx, id)
}

// List retrieves members matching the filter
func (s *Member) List(ctx context.Context, f repos.MemberFilter, opts *models.ListOptions) ([]models.Member, error) {
	return s.store.Members.List(ctx, f, opts)
}

// Delete removes a member and its dependent records
func (s *Member) Delete(ctx context.Context, id uint) error {
	if err := s.store.Members.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoWithFields("member deleted", map[string]interface{}{"member_id": id})
	return nil
}

// Projects returns the projects a member belongs to
func (s *Member) Projects(ctx context.Context, m *models.Member) ([]models.Project, error) {
	return s.store.Members.Projects(ctx, m)
}

// Publications returns the publications a member authored
func (s *Member) Publications(ctx context.Context, m *models.Member) ([]models.Publication, error) {
	return s.store.Members.Publications(ctx, m)
}

// Events returns the events a member attends
func (s *Member) Events(ctx context.Context, m *models.Member) ([]models.Event, error) {
	return s.store.Members.Events(ctx, m)
}
