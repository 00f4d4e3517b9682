// Package services implements the lab-management business layer on top of
// the repositories: validation, equipment status, budgets and auth.
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// Options configures the services container
type Options struct {
	Blob        blob.Store
	Issuer      *auth.Issuer
	AllowSignup bool
	PresignTTL  time.Duration
	// ContentURL builds the API download path of a document
	ContentURL func(documentID uint) string
	Now        func() time.Time
}

// Services groups every service of the application
type Services struct {
	Members       *Member
	Projects      *Project
	Grants        *Grant
	Expenses      *Expense
	Equipment     *Equipment
	Bookings      *Booking
	Events        *Event
	Publications  *Publication
	Collaborators *Collaborator
	Documents     *Document
	NoteTasks     *NoteTask
	AcademicInfo  *AcademicInfo
	Protocols     *Protocol
	Users         *User
	Dashboard     *Dashboard
}

// New wires every service to db
func New(db *gorm.DB, opts Options) *Services {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Blob == nil {
		opts.Blob = blob.NewMemoryStore()
	}
	if opts.Issuer == nil {
		opts.Issuer = auth.NewIssuer("", "labtrack", 0)
	}
	store := repos.NewStore(db)
	return &Services{
		Members:       NewMemberService(store),
		Projects:      NewProjectService(store),
		Grants:        NewGrantService(store),
		Expenses:      NewExpenseService(store, opts.Now),
		Equipment:     NewEquipmentService(store),
		Bookings:      NewBookingService(store),
		Events:        NewEventService(store),
		Publications:  NewPublicationService(store),
		Collaborators: NewCollaboratorService(store),
		Documents:     NewDocumentService(store, opts.Blob, opts.PresignTTL, opts.ContentURL),
		NoteTasks:     NewNoteTaskService(store),
		AcademicInfo:  NewAcademicInfoService(store),
		Protocols:     NewProtocolService(store),
		Users:         NewUserService(store, opts.Issuer, opts.AllowSignup),
		Dashboard:     NewDashboardService(store, opts.Now),
	}
}
