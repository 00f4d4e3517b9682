package seed

import (
	"context"
	"fmt"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/services"
)

// refs maps fixture keys of one kind to database ids
type refs map[string]uint

type loader struct {
	ctx    context.Context
	svc    *services.Services
	counts Counts
	keys   map[string]refs
	// step is the fixture section being loaded; counts are kept per step
	step string
}

func (l *loader) remember(kind, key string, id uint) {
	l.counts[l.step]++
	if key == "" {
		return
	}
	if l.keys[kind] == nil {
		l.keys[kind] = refs{}
	}
	l.keys[kind][key] = id
}

func (l *loader) one(kind, key string) (*uint, error) {
	if key == "" {
		return nil, nil
	}
	id, ok := l.keys[kind][key]
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", kind, key)
	}
	return &id, nil
}

func (l *loader) many(kind string, keys []string) (*[]uint, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(keys))
	for _, key := range keys {
		id, err := l.one(kind, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, *id)
	}
	return &ids, nil
}

func (l *loader) load(f *Fixtures) error {
	steps := []struct {
		kind string
		fn   func(*Fixtures) error
	}{
		{"members", l.members},
		{"projects", l.projects},
		{"grants", l.grants},
		{"expenses", l.expenses},
		{"equipment", l.equipment},
		{"bookings", l.bookings},
		{"events", l.events},
		{"collaborators", l.collaborators},
		{"publications", l.publications},
		{"protocols", l.protocols},
		{"note tasks", l.noteTasks},
		{"academic info", l.academicInfo},
	}
	for _, step := range steps {
		l.step = step.kind
		if err := step.fn(f); err != nil {
			return fmt.Errorf("seed %s: %w", step.kind, err)
		}
	}
	return nil
}

func (l *loader) members(f *Fixtures) error {
	for _, m := range f.Members {
		created, err := l.svc.Members.Create(l.ctx, services.MemberInput{
			Name:              &m.Name,
			Email:             &m.Email,
			Role:              enum[models.MemberRole](m.Role),
			Status:            enum[models.MemberStatus](m.Status),
			Title:             m.Title,
			Phone:             m.Phone,
			Bio:               m.Bio,
			ResearchInterests: m.ResearchInterests,
			JoinedAt:          m.JoinedAt,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", m.Email, err)
		}
		l.remember("member", m.Key, created.ID)
	}
	return nil
}

func (l *loader) projects(f *Fixtures) error {
	for _, p := range f.Projects {
		memberIDs, err := l.many("member", p.Members)
		if err != nil {
			return err
		}
		created, err := l.svc.Projects.Create(l.ctx, services.ProjectInput{
			Title:       &p.Title,
			Description: p.Description,
			Status:      enum[models.ProjectStatus](p.Status),
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Budget:      &p.Budget,
			MemberIDs:   memberIDs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", p.Title, err)
		}
		l.remember("project", p.Key, created.ID)
	}
	return nil
}

func (l *loader) grants(f *Fixtures) error {
	for _, g := range f.Grants {
		projectIDs, err := l.many("project", g.Projects)
		if err != nil {
			return err
		}
		created, err := l.svc.Grants.Create(l.ctx, services.GrantInput{
			Title:           &g.Title,
			Agency:          &g.Agency,
			ReferenceNumber: g.ReferenceNumber,
			Budget:          &g.Budget,
			Status:          enum[models.GrantStatus](g.Status),
			StartDate:       g.StartDate,
			EndDate:         g.EndDate,
			Deadline:        g.Deadline,
			ProjectIDs:      projectIDs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", g.Title, err)
		}
		l.remember("grant", g.Key, created.ID)
	}
	return nil
}

func (l *loader) expenses(f *Fixtures) error {
	for _, e := range f.Expenses {
		projectID, err := l.one("project", e.Project)
		if err != nil {
			return err
		}
		grantID, err := l.one("grant", e.Grant)
		if err != nil {
			return err
		}
		created, err := l.svc.Expenses.Create(l.ctx, services.ExpenseInput{
			Description: &e.Description,
			Amount:      &e.Amount,
			Category:    enum[models.ExpenseCategory](e.Category),
			Date:        e.Date,
			ProjectID:   projectID,
			GrantID:     grantID,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", e.Description, err)
		}
		l.remember("expense", "", created.ID)
	}
	return nil
}

func (l *loader) equipment(f *Fixtures) error {
	for _, e := range f.Equipment {
		memberID, err := l.one("member", e.Member)
		if err != nil {
			return err
		}
		projectID, err := l.one("project", e.Project)
		if err != nil {
			return err
		}
		in := services.EquipmentInput{
			Name:         &e.Name,
			Description:  e.Description,
			SerialNumber: e.SerialNumber,
			Location:     e.Location,
			PurchaseDate: e.PurchaseDate,
			MemberID:     memberID,
			ProjectID:    projectID,
		}
		if e.Maintenance {
			status := models.EquipmentStatusMaintenance
			in.Status = &status
		}
		created, err := l.svc.Equipment.Create(l.ctx, in)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		l.remember("equipment", e.Key, created.ID)
	}
	return nil
}

func (l *loader) bookings(f *Fixtures) error {
	for _, b := range f.Bookings {
		equipmentID, err := l.one("equipment", b.Equipment)
		if err != nil {
			return err
		}
		memberID, err := l.one("member", b.Member)
		if err != nil {
			return err
		}
		projectID, err := l.one("project", b.Project)
		if err != nil {
			return err
		}
		start, end := b.StartTime, b.EndTime
		created, err := l.svc.Bookings.Create(l.ctx, services.BookingInput{
			EquipmentID: equipmentID,
			MemberID:    memberID,
			ProjectID:   projectID,
			StartTime:   &start,
			EndTime:     &end,
			Purpose:     b.Purpose,
		})
		if err != nil {
			return fmt.Errorf("%s at %s: %w", b.Equipment, start, err)
		}
		l.remember("booking", "", created.ID)
	}
	return nil
}

func (l *loader) events(f *Fixtures) error {
	for _, e := range f.Events {
		projectID, err := l.one("project", e.Project)
		if err != nil {
			return err
		}
		attendeeIDs, err := l.many("member", e.Attendees)
		if err != nil {
			return err
		}
		start := e.StartTime
		created, err := l.svc.Events.Create(l.ctx, services.EventInput{
			Title:       &e.Title,
			Description: e.Description,
			Type:        enum[models.EventType](e.Type),
			StartTime:   &start,
			EndTime:     e.EndTime,
			Location:    e.Location,
			ProjectID:   projectID,
			AttendeeIDs: attendeeIDs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", e.Title, err)
		}
		l.remember("event", "", created.ID)
	}
	return nil
}

func (l *loader) collaborators(f *Fixtures) error {
	for _, c := range f.Collaborators {
		projectIDs, err := l.many("project", c.Projects)
		if err != nil {
			return err
		}
		created, err := l.svc.Collaborators.Create(l.ctx, services.CollaboratorInput{
			Name:        &c.Name,
			Email:       c.Email,
			Institution: c.Institution,
			Expertise:   c.Expertise,
			ProjectIDs:  projectIDs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		l.remember("collaborator", c.Key, created.ID)
	}
	return nil
}

func (l *loader) publications(f *Fixtures) error {
	for _, p := range f.Publications {
		authorIDs, err := l.many("member", p.Authors)
		if err != nil {
			return err
		}
		collaboratorIDs, err := l.many("collaborator", p.Collaborators)
		if err != nil {
			return err
		}
		projectIDs, err := l.many("project", p.Projects)
		if err != nil {
			return err
		}
		created, err := l.svc.Publications.Create(l.ctx, services.PublicationInput{
			Title:           &p.Title,
			Abstract:        p.Abstract,
			Venue:           p.Venue,
			DOI:             p.DOI,
			URL:             p.URL,
			Status:          enum[models.PublicationStatus](p.Status),
			PublishedAt:     p.PublishedAt,
			AuthorIDs:       authorIDs,
			CollaboratorIDs: collaboratorIDs,
			ProjectIDs:      projectIDs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", p.Title, err)
		}
		l.remember("publication", "", created.ID)
	}
	return nil
}

func (l *loader) protocols(f *Fixtures) error {
	for _, p := range f.Protocols {
		authorID, err := l.one("member", p.Author)
		if err != nil {
			return err
		}
		projectIDs, err := l.many("project", p.Projects)
		if err != nil {
			return err
		}
		equipmentIDs, err := l.many("equipment", p.Equipment)
		if err != nil {
			return err
		}
		created, err := l.svc.Protocols.Create(l.ctx, services.ProtocolInput{
			Title:        &p.Title,
			Description:  p.Description,
			Category:     p.Category,
			Version:      p.Version,
			Content:      p.Content,
			AuthorID:     authorID,
			ProjectIDs:   projectIDs,
			EquipmentIDs: equipmentIDs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", p.Title, err)
		}
		l.remember("protocol", "", created.ID)
	}
	return nil
}

func (l *loader) noteTasks(f *Fixtures) error {
	for _, n := range f.NoteTasks {
		memberID, err := l.one("member", n.Member)
		if err != nil {
			return err
		}
		projectID, err := l.one("project", n.Project)
		if err != nil {
			return err
		}
		created, err := l.svc.NoteTasks.Create(l.ctx, services.NoteTaskInput{
			Title:     &n.Title,
			Content:   n.Content,
			Kind:      enum[models.NoteKind](n.Kind),
			Priority:  enum[models.Priority](n.Priority),
			DueDate:   n.DueDate,
			MemberID:  memberID,
			ProjectID: projectID,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", n.Title, err)
		}
		l.remember("note task", "", created.ID)
	}
	return nil
}

func (l *loader) academicInfo(f *Fixtures) error {
	for _, a := range f.AcademicInfo {
		memberID, err := l.one("member", a.Member)
		if err != nil {
			return err
		}
		created, err := l.svc.AcademicInfo.Create(l.ctx, services.AcademicInfoInput{
			MemberID:    memberID,
			Degree:      &a.Degree,
			Field:       a.Field,
			Institution: &a.Institution,
			Year:        a.Year,
			ThesisTitle: a.ThesisTitle,
			Advisor:     a.Advisor,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", a.Degree, err)
		}
		l.remember("academic info", "", created.ID)
	}
	return nil
}

// enum converts an optional fixture string; empty means unset
func enum[T ~string](s string) *T {
	if s == "" {
		return nil
	}
	v := T(s)
	return &v
}
