package seed

import (
	"time"
)

// Fixtures is the document read from a fixture file. Entities refer to each
// other through their Key.
type Fixtures struct {
	Members       []Member       `yaml:"members"`
	Projects      []Project      `yaml:"projects"`
	Grants        []Grant        `yaml:"grants"`
	Expenses      []Expense      `yaml:"expenses"`
	Equipment     []Equipment    `yaml:"equipment"`
	Bookings      []Booking      `yaml:"bookings"`
	Events        []Event        `yaml:"events"`
	Collaborators []Collaborator `yaml:"collaborators"`
	Publications  []Publication  `yaml:"publications"`
	Protocols     []Protocol     `yaml:"protocols"`
	NoteTasks     []NoteTask     `yaml:"note_tasks"`
	AcademicInfo  []AcademicInfo `yaml:"academic_info"`
}

type Member struct {
	Key               string     `yaml:"key"`
	Name              string     `yaml:"name"`
	Email             string     `yaml:"email"`
	Role              string     `yaml:"role"`
	Status            string     `yaml:"status"`
	Title             *string    `yaml:"title"`
	Phone             *string    `yaml:"phone"`
	Bio               *string    `yaml:"bio"`
	ResearchInterests *string    `yaml:"research_interests"`
	JoinedAt          *time.Time `yaml:"joined_at"`
}

type Project struct {
	Key         string     `yaml:"key"`
	Title       string     `yaml:"title"`
	Description *string    `yaml:"description"`
	Status      string     `yaml:"status"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Budget      float64    `yaml:"budget"`
	Members     []string   `yaml:"members"`
}

type Grant struct {
	Key             string     `yaml:"key"`
	Title           string     `yaml:"title"`
	Agency          string     `yaml:"agency"`
	ReferenceNumber *string    `yaml:"reference_number"`
	Budget          float64    `yaml:"budget"`
	Status          string     `yaml:"status"`
	StartDate       *time.Time `yaml:"start_date"`
	EndDate         *time.Time `yaml:"end_date"`
	Deadline        *time.Time `yaml:"deadline"`
	Projects        []string   `yaml:"projects"`
}

type Expense struct {
	Description string     `yaml:"description"`
	Amount      float64    `yaml:"amount"`
	Category    string     `yaml:"category"`
	Date        *time.Time `yaml:"date"`
	Project     string     `yaml:"project"`
	Grant       string     `yaml:"grant"`
}

type Equipment struct {
	Key          string     `yaml:"key"`
	Name         string     `yaml:"name"`
	Description  *string    `yaml:"description"`
	SerialNumber *string    `yaml:"serial_number"`
	Location     *string    `yaml:"location"`
	PurchaseDate *time.Time `yaml:"purchase_date"`
	Member       string     `yaml:"member"`
	Project      string     `yaml:"project"`
	Maintenance  bool       `yaml:"maintenance"`
}

type Booking struct {
	Equipment string    `yaml:"equipment"`
	Member    string    `yaml:"member"`
	Project   string    `yaml:"project"`
	StartTime time.Time `yaml:"start_time"`
	EndTime   time.Time `yaml:"end_time"`
	Purpose   *string   `yaml:"purpose"`
}

type Event struct {
	Title       string     `yaml:"title"`
	Description *string    `yaml:"description"`
	Type        string     `yaml:"type"`
	StartTime   time.Time  `yaml:"start_time"`
	EndTime     *time.Time `yaml:"end_time"`
	Location    *string    `yaml:"location"`
	Project     string     `yaml:"project"`
	Attendees   []string   `yaml:"attendees"`
}

type Collaborator struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Email       *string  `yaml:"email"`
	Institution *string  `yaml:"institution"`
	Expertise   *string  `yaml:"expertise"`
	Projects    []string `yaml:"projects"`
}

type Publication struct {
	Title         string     `yaml:"title"`
	Abstract      *string    `yaml:"abstract"`
	Venue         *string    `yaml:"venue"`
	DOI           *string    `yaml:"doi"`
	URL           *string    `yaml:"url"`
	Status        string     `yaml:"status"`
	PublishedAt   *time.Time `yaml:"published_at"`
	Authors       []string   `yaml:"authors"`
	Collaborators []string   `yaml:"collaborators"`
	Projects      []string   `yaml:"projects"`
}

type Protocol struct {
	Title       string   `yaml:"title"`
	Description *string  `yaml:"description"`
	Category    *string  `yaml:"category"`
	Version     *string  `yaml:"version"`
	Content     *string  `yaml:"content"`
	Author      string   `yaml:"author"`
	Projects    []string `yaml:"projects"`
	Equipment   []string `yaml:"equipment"`
}

type NoteTask struct {
	Title    string     `yaml:"title"`
	Content  *string    `yaml:"content"`
	Kind     string     `yaml:"kind"`
	Priority string     `yaml:"priority"`
	DueDate  *time.Time `yaml:"due_date"`
	Member   string     `yaml:"member"`
	Project  string     `yaml:"project"`
}

type AcademicInfo struct {
	Member      string  `yaml:"member"`
	Degree      string  `yaml:"degree"`
	Field       *string `yaml:"field"`
	Institution string  `yaml:"institution"`
	Year        *int    `yaml:"year"`
	ThesisTitle *string `yaml:"thesis_title"`
	Advisor     *string `yaml:"advisor"`
}
