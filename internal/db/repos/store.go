package repos

import (
	"context"

	"gorm.io/gorm"
)

// Store groups every repository over a single connection or transaction
type Store struct {
	db            *gorm.DB
	Members       *MemberRepository
	Projects      *ProjectRepository
	Grants        *GrantRepository
	Expenses      *ExpenseRepository
	Equipment     *EquipmentRepository
	Bookings      *BookingRepository
	Events        *EventRepository
	Publications  *PublicationRepository
	Collaborators *CollaboratorRepository
	Documents     *DocumentRepository
	NoteTasks     *NoteTaskRepository
	AcademicInfo  *AcademicInfoRepository
	Protocols     *ProtocolRepository
	Users         *UserRepository
}

// NewStore creates a Store with every repository bound to db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Members:       NewMemberRepository(db),
		Projects:      NewProjectRepository(db),
		Grants:        NewGrantRepository(db),
		Expenses:      NewExpenseRepository(db),
		Equipment:     NewEquipmentRepository(db),
		Bookings:      NewBookingRepository(db),
		Events:        NewEventRepository(db),
		Publications:  NewPublicationRepository(db),
		Collaborators: NewCollaboratorRepository(db),
		Documents:     NewDocumentRepository(db),
		NoteTasks:     NewNoteTaskRepository(db),
		AcademicInfo:  NewAcademicInfoRepository(db),
		Protocols:     NewProtocolRepository(db),
		Users:         NewUserRepository(db),
	}
}

// Transaction runs fn with a Store bound to a database transaction.
// The transaction is rolled back if fn returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB returns the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}
