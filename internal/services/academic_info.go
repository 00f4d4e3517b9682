package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// AcademicInfoInput carries the fields of a create or update
type AcademicInfoInput struct {
	MemberID    *uint
	Degree      *string
	Field       *string
	Institution *string
	Year        *int
	ThesisTitle *string
	Advisor     *string
}

func (in AcademicInfoInput) apply(a *models.AcademicInfo) {
	set(&a.MemberID, in.MemberID)
	setTrimmed(&a.Degree, in.Degree)
	setText(&a.Field, in.Field)
	setTrimmed(&a.Institution, in.Institution)
	if in.Year != nil {
		year := *in.Year
		a.Year = &year
	}
	setText(&a.ThesisTitle, in.ThesisTitle)
	setText(&a.Advisor, in.Advisor)
}

// AcademicInfo handles the degrees and affiliations of members
type AcademicInfo struct {
	store *repos.Store
}

// NewAcademicInfoService creates a new academic info service instance
func NewAcademicInfoService(store *repos.Store) *AcademicInfo {
	return &AcademicInfo{store: store}
}

// Create records a degree for a member
func (s *AcademicInfo) Create(ctx context.Context, in AcademicInfoInput) (*models.AcademicInfo, error) {
	a := &models.AcademicInfo{}
	if err := s.save(ctx, a, in, true); err != nil {
		return nil, err
	}
	return a, nil
}

// Update applies in to an existing record
func (s *AcademicInfo) Update(ctx context.Context, id uint, in AcademicInfoInput) (*models.AcademicInfo, error) {
	a, err := s.store.AcademicInfo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, a, in, false); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AcademicInfo) save(ctx context.Context, a *models.AcademicInfo, in AcademicInfoInput, create bool) error {
	in.apply(a)
	err := validate(validation.ValidateStruct(a,
		validation.Field(&a.MemberID, validation.Required),
		validation.Field(&a.Degree, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Institution, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.Year, validation.Min(1900), validation.Max(2100)),
	))
	if err != nil {
		return err
	}
	if err := s.store.Members.RequireIDs(ctx, a.MemberID); err != nil {
		return err
	}
	if create {
		return s.store.AcademicInfo.Create(ctx, a)
	}
	return s.store.AcademicInfo.Update(ctx, a)
}

// Get retrieves a record by ID
func (s *AcademicInfo) Get(ctx context.Context, id uint) (*models.AcademicInfo, error) {
	return s.store.AcademicInfo.Get(ctx, id)
}

// List retrieves records, optionally of one member
func (s *AcademicInfo) List(ctx context.Context, memberID *uint, opts *models.ListOptions) ([]models.AcademicInfo, error) {
	return s.store.AcademicInfo.List(ctx, memberID, opts)
}

// Delete deletes a record
func (s *AcademicInfo) Delete(ctx context.Context, id uint) error {
	return s.store.AcademicInfo.Delete(ctx, id)
}
