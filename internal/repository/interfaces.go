package repository

import (
	"time"

	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
}

// ShiftRepositoryInterface defines the interface for shift template operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByName(name string) (*models.Shift, error)
	GetAll(activeOnly bool) ([]models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// RecurrencePatternRepositoryInterface defines the interface for recurrence pattern operations
type RecurrencePatternRepositoryInterface interface {
	Create(pattern *models.RecurrencePattern) error
	GetByID(id uuid.UUID) (*models.RecurrencePattern, error)
	GetAll() ([]models.RecurrencePattern, error)
	FindByRule(recurrenceType models.RecurrenceType, intervalDays *int, dayOfWeek *string) (*models.RecurrencePattern, error)
	Update(pattern *models.RecurrencePattern) error
	Delete(id uuid.UUID) error
}

// WorkScheduleRepositoryInterface defines the interface for work schedule operations
type WorkScheduleRepositoryInterface interface {
	Create(schedule *models.WorkSchedule) error
	GetByID(id uuid.UUID) (*models.WorkSchedule, error)
	GetAll(limit, offset int) ([]models.WorkSchedule, int64, error)
	CountByRecurrencePatternID(patternID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// EmployeeShiftRepositoryInterface defines the interface for occurrence operations
type EmployeeShiftRepositoryInterface interface {
	Create(shift *models.EmployeeShift) error
	GetByDate(date time.Time) ([]models.EmployeeShift, error)
	GetByDateRange(from, to time.Time) ([]models.EmployeeShift, error)
	GetByWorkScheduleID(scheduleID uuid.UUID) ([]models.EmployeeShift, error)
	ExistsByDate(date time.Time) (bool, error)
	CountByWorkScheduleID(scheduleID uuid.UUID) (int64, error)
	CountByShiftID(shiftID uuid.UUID) (int64, error)
	Unlink(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// PaymentRepositoryInterface defines the interface for payment operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByTxnRef(txnRef string) (*models.Payment, error)
	GetPaidBetween(from, to *time.Time) ([]models.Payment, error)
	Update(payment *models.Payment) error
	UpdateOrderStatus(orderID uuid.UUID, status string) error
}

// Repositories bundles the repositories bound to one database handle
type Repositories struct {
	Users              UserRepositoryInterface
	Shifts             ShiftRepositoryInterface
	RecurrencePatterns RecurrencePatternRepositoryInterface
	WorkSchedules      WorkScheduleRepositoryInterface
	EmployeeShifts     EmployeeShiftRepositoryInterface
	Payments           PaymentRepositoryInterface
}

// TransactorInterface runs a unit of work against repositories sharing one transaction
type TransactorInterface interface {
	RunInTransaction(fn func(repos Repositories) error) error
}

// Ensure implementations satisfy interfaces
var (
	_ UserRepositoryInterface              = (*UserRepository)(nil)
	_ ShiftRepositoryInterface             = (*ShiftRepository)(nil)
	_ RecurrencePatternRepositoryInterface = (*RecurrencePatternRepository)(nil)
	_ WorkScheduleRepositoryInterface      = (*WorkScheduleRepository)(nil)
	_ EmployeeShiftRepositoryInterface     = (*EmployeeShiftRepository)(nil)
	_ PaymentRepositoryInterface           = (*PaymentRepository)(nil)
	_ TransactorInterface                  = (*Transactor)(nil)
)
