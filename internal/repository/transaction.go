package repository

import "gorm.io/gorm"

// NewRepositories binds every repository to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:              NewUserRepository(db),
		Shifts:             NewShiftRepository(db),
		RecurrencePatterns: NewRecurrencePatternRepository(db),
		WorkSchedules:      NewWorkScheduleRepository(db),
		EmployeeShifts:     NewEmployeeShiftRepository(db),
		Payments:           NewPaymentRepository(db),
	}
}

// Transactor opens database transactions for services
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise
func (t *Transactor) RunInTransaction(fn func(repos Repositories) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
