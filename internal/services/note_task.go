package services

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// NoteTaskInput carries the fields of a create or update
type NoteTaskInput struct {
	Title     *string
	Content   *string
	Kind      *models.NoteKind
	Priority  *models.Priority
	Completed *bool
	DueDate   *time.Time
	MemberID  *uint
	ProjectID *uint
}

func (in NoteTaskInput) apply(n *models.NoteTask) {
	setTrimmed(&n.Title, in.Title)
	setText(&n.Content, in.Content)
	set(&n.Kind, in.Kind)
	set(&n.Priority, in.Priority)
	set(&n.Completed, in.Completed)
	setTime(&n.DueDate, in.DueDate)
	setRef(&n.MemberID, in.MemberID)
	setRef(&n.ProjectID, in.ProjectID)
}

// NoteTask handles notes and to-do items
type NoteTask struct {
	store *repos.Store
}

// NewNoteTaskService creates a new note/task service instance
func NewNoteTaskService(store *repos.Store) *NoteTask {
	return &NoteTask{store: store}
}

// Create creates a new note or task
func (s *NoteTask) Create(ctx context.Context, in NoteTaskInput) (*models.NoteTask, error) {
	n := &models.NoteTask{Kind: models.NoteKindNote, Priority: models.PriorityMedium}
	if err := s.save(ctx, n, in, true); err != nil {
		return nil, err
	}
	return n, nil
}

// Update applies in to an existing note or task
func (s *NoteTask) Update(ctx context.Context, id uint, in NoteTaskInput) (*models.NoteTask, error) {
	n, err := s.store.NoteTasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, n, in, false); err != nil {
		return nil, err
	}
	return n, nil
}

// Toggle flips the completed flag
func (s *NoteTask) Toggle(ctx context.Context, id uint) (*models.NoteTask, error) {
	n, err := s.store.NoteTasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Completed = !n.Completed
	if err := s.store.NoteTasks.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoteTask) save(ctx context.Context, n *models.NoteTask, in NoteTaskInput, create bool) error {
	in.apply(n)
	err := validate(validation.ValidateStruct(n,
		validation.Field(&n.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&n.Kind, validation.Required, oneOf(models.NoteKinds)),
		validation.Field(&n.Priority, validation.Required, oneOf(models.Priorities)),
	))
	if err != nil {
		return err
	}
	if err := s.store.Members.RequireIDs(ctx, optional(n.MemberID)...); err != nil {
		return err
	}
	if err := s.store.Projects.RequireIDs(ctx, optional(n.ProjectID)...); err != nil {
		return err
	}
	if create {
		return s.store.NoteTasks.Create(ctx, n)
	}
	return s.store.NoteTasks.Update(ctx, n)
}

// Get retrieves a note or task by ID
func (s *NoteTask) Get(ctx context.Context, id uint) (*models.NoteTask, error) {
	return s.store.NoteTasks.Get(ctx, id)
}

// List retrieves notes and tasks matching the filter
func (s *NoteTask) List(ctx context.Context, f repos.NoteTaskFilter, opts *models.ListOptions) ([]models.NoteTask, error) {
	return s.store.NoteTasks.List(ctx, f, opts)
}

// Delete deletes a note or task
func (s *NoteTask) Delete(ctx context.Context, id uint) error {
	return s.store.NoteTasks.Delete(ctx, id)
}
