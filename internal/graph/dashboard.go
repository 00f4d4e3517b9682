package graph

import (
	"context"

	"github.com/labtrack/labtrack/internal/services"
)

type dashboardResolver struct {
	r *Resolver
	s *services.Summary
}

func (x *dashboardResolver) Members() int32 { return int32(x.s.Members) }
func (x *dashboardResolver) ActiveMembers() int32 { return int32(x.s.ActiveMembers) }
func (x *dashboardResolver) Projects() int32 { return int32(x.s.Projects) }
func (x *dashboardResolver) ActiveProjects() int32 { return int32(x.s.ActiveProjects) }
func (x *dashboardResolver) Equipment() int32 { return int32(x.s.Equipment) }
func (x *dashboardResolver) AvailableEquipment() int32 { return int32(x.s.AvailableEquipment) }
func (x *dashboardResolver) InUseEquipment() int32 { return int32(x.s.InUseEquipment) }
func (x *dashboardResolver) MaintenanceEquipment() int32 { return int32(x.s.MaintenanceEquipment) }
func (x *dashboardResolver) Publications() int32 { return int32(x.s.Publications) }
func (x *dashboardResolver) OpenTasks() int32 { return int32(x.s.OpenTasks) }
func (x *dashboardResolver) GrantBudget() float64 { return x.s.Grants.Budget }
func (x *dashboardResolver) GrantSpent() float64 { return x.s.Grants.Spent }
func (x *dashboardResolver) GrantRemaining() float64 { return x.s.Grants.Remaining }

func (x *dashboardResolver) UpcomingBookings() []*bookingResolver {
	return wrapAll(x.s.UpcomingBookings, x.r.booking)
}

func (x *dashboardResolver) UpcomingEvents() []*eventResolver {
	return wrapAll(x.s.UpcomingEvents, x.r.event)
}

// Dashboard summarizes the lab
func (r *Resolver) Dashboard(ctx context.Context) (*dashboardResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	s, err := r.svc.Dashboard.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dashboardResolver{r: r, s: s}, nil
}
