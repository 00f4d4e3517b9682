package services

import (
	"context"
	"time"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// upcomingLimit caps the bookings and events shown on the dashboard
const upcomingLimit = 5

// Summary is the landing page overview
type Summary struct {
	Members              int64
	ActiveMembers        int64
	Projects             int64
	ActiveProjects       int64
	Equipment            int64
	AvailableEquipment   int64
	InUseEquipment       int64
	MaintenanceEquipment int64
	Publications         int64
	OpenTasks            int64
	Grants               Budget
	UpcomingBookings     []models.Booking
	UpcomingEvents       []models.Event
}

// Dashboard aggregates counts across the lab
type Dashboard struct {
	store *repos.Store
	now   func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(store *repos.Store, now func() time.Time) *Dashboard {
	return &Dashboard{store: store, now: now}
}

// Summary computes the dashboard overview
func (s *Dashboard) Summary(ctx context.Context) (*Summary, error) {
	var (
		out Summary
		err error
	)
	active := models.MemberStatusActive
	activeProject := models.ProjectStatusActive
	available := models.EquipmentStatusAvailable
	inUse := models.EquipmentStatusInUse
	maintenance := models.EquipmentStatusMaintenance
	task := models.NoteKindTask
	open := false

	counts := []struct {
		dst *int64
		fn  func() (int64, error)
	}{
		{&out.Members, func() (int64, error) { return s.store.Members.Count(ctx) }},
		{&out.ActiveMembers, func() (int64, error) {
			return s.store.Members.CountWhere(ctx, repos.MemberFilter{Status: &active})
		}},
		{&out.Projects, func() (int64, error) { return s.store.Projects.Count(ctx) }},
		{&out.ActiveProjects, func() (int64, error) {
			return s.store.Projects.CountWhere(ctx, repos.ProjectFilter{Status: &activeProject})
		}},
		{&out.Equipment, func() (int64, error) { return s.store.Equipment.Count(ctx) }},
		{&out.AvailableEquipment, func() (int64, error) {
			return s.store.Equipment.CountWhere(ctx, repos.EquipmentFilter{Status: &available})
		}},
		{&out.InUseEquipment, func() (int64, error) {
			return s.store.Equipment.CountWhere(ctx, repos.EquipmentFilter{Status: &inUse})
		}},
		{&out.MaintenanceEquipment, func() (int64, error) {
			return s.store.Equipment.CountWhere(ctx, repos.EquipmentFilter{Status: &maintenance})
		}},
		{&out.Publications, func() (int64, error) { return s.store.Publications.Count(ctx) }},
		{&out.OpenTasks, func() (int64, error) {
			return s.store.NoteTasks.CountWhere(ctx, repos.NoteTaskFilter{Kind: &task, Completed: &open})
		}},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(); err != nil {
			return nil, err
		}
	}

	budget, err := s.store.Grants.TotalBudget(ctx)
	if err != nil {
		return nil, err
	}
	spent, err := s.store.Expenses.SumGranted(ctx)
	if err != nil {
		return nil, err
	}
	out.Grants = NewBudget(budget, spent)

	now := s.now()
	if out.UpcomingBookings, err = s.store.Bookings.Upcoming(ctx, now, upcomingLimit); err != nil {
		return nil, err
	}
	if out.UpcomingEvents, err = s.store.Events.Upcoming(ctx, now, upcomingLimit); err != nil {
		return nil, err
	}
	return &out, nil
}
