package models

// All returns one value of every persisted model, in dependency order, for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Member{},
		&Project{},
		&Grant{},
		&Expense{},
		&Equipment{},
		&Booking{},
		&Event{},
		&Collaborator{},
		&Publication{},
		&Document{},
		&NoteTask{},
		&AcademicInfo{},
		&Protocol{},
		&User{},
	}
}
