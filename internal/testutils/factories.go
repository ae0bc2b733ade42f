package testutils

import (
	"time"

	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date returns the civil date for y-m-d
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		// unique username per call
		Username: "user_" + id.String()[:8],
		FullName: "Test Barista",
		Email:    "barista@test.com",
		Role:     models.RoleStaff,
		Active:   true,
	}
}

// Admin creates a test User with the ADMIN role
func (f *UserFactory) Admin() *models.User {
	u := f.Create()
	u.Role = models.RoleAdmin
	u.FullName = "Test Admin"
	return u
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a morning shift
func (f *ShiftFactory) Create() *models.Shift {
	id := uuid.New()
	return &models.Shift{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Morning " + id.String()[:6],
		StartTime: "07:00",
		EndTime:   "12:00",
		Active:    true,
	}
}

// WithHours creates a shift with custom hours
func (f *ShiftFactory) WithHours(start, end string) *models.Shift {
	s := f.Create()
	s.StartTime = start
	s.EndTime = end
	return s
}

// RecurrencePatternFactory provides methods to create test RecurrencePattern data
type RecurrencePatternFactory struct{}

// NewRecurrencePatternFactory creates a new RecurrencePatternFactory
func NewRecurrencePatternFactory() *RecurrencePatternFactory {
	return &RecurrencePatternFactory{}
}

// Daily creates a DAILY pattern with the given interval
func (f *RecurrencePatternFactory) Daily(interval int) *models.RecurrencePattern {
	return &models.RecurrencePattern{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Type:         models.RecurrenceDaily,
		IntervalDays: &interval,
	}
}

// Weekly creates a WEEKLY pattern on the given day (MONDAY..SUNDAY)
func (f *RecurrencePatternFactory) Weekly(day string) *models.RecurrencePattern {
	return &models.RecurrencePattern{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Type:      models.RecurrenceWeekly,
		DayOfWeek: &day,
	}
}

// WorkScheduleFactory provides methods to create test WorkSchedule data
type WorkScheduleFactory struct{}

// NewWorkScheduleFactory creates a new WorkScheduleFactory
func NewWorkScheduleFactory() *WorkScheduleFactory {
	return &WorkScheduleFactory{}
}

// Create creates a one-week schedule starting 2024-01-01
func (f *WorkScheduleFactory) Create(createdBy uuid.UUID) *models.WorkSchedule {
	return &models.WorkSchedule{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Week 1",
		Description: "Generated in tests",
		StartDate:   Date(2024, time.January, 1),
		EndDate:     Date(2024, time.January, 7),
		CreatedBy:   createdBy,
	}
}

// EmployeeShiftFactory provides methods to create test EmployeeShift data
type EmployeeShiftFactory struct{}

// NewEmployeeShiftFactory creates a new EmployeeShiftFactory
func NewEmployeeShiftFactory() *EmployeeShiftFactory {
	return &EmployeeShiftFactory{}
}

// Create creates an occurrence of shiftID on date
func (f *EmployeeShiftFactory) Create(shiftID uuid.UUID, date time.Time, createdBy uuid.UUID) *models.EmployeeShift {
	return &models.EmployeeShift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   shiftID,
		ShiftDate: date,
		Status:    models.EmployeeShiftAssigned,
		CreatedBy: createdBy,
	}
}

// InSchedule creates an occurrence linked to a work schedule
func (f *EmployeeShiftFactory) InSchedule(scheduleID, shiftID uuid.UUID, date time.Time, createdBy uuid.UUID) *models.EmployeeShift {
	es := f.Create(shiftID, date, createdBy)
	es.WorkScheduleID = &scheduleID
	return es
}

// PaymentFactory provides methods to create test Order and Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Order creates an order with the given total
func (f *PaymentFactory) Order(total string) *models.Order {
	id := uuid.New()
	return &models.Order{
		BaseModel:   models.BaseModel{ID: id},
		Code:        "ORD-" + id.String()[:8],
		TotalAmount: decimal.RequireFromString(total),
		Status:      "pending",
	}
}

// Pending creates a pending payment for an order
func (f *PaymentFactory) Pending(order *models.Order) *models.Payment {
	return &models.Payment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OrderID:   order.ID,
		Amount:    order.TotalAmount,
		Status:    models.PaymentPending,
		TxnRef:    "TXN-" + uuid.New().String()[:12],
		Provider:  "VNPAY",
	}
}

// Paid creates a paid payment for an order at the given instant
func (f *PaymentFactory) Paid(order *models.Order, at time.Time) *models.Payment {
	p := f.Pending(order)
	p.Status = models.PaymentPaid
	p.PaidAt = &at
	return p
}

// FactorySet provides access to all factories
type FactorySet struct {
	User              *UserFactory
	Shift             *ShiftFactory
	RecurrencePattern *RecurrencePatternFactory
	WorkSchedule      *WorkScheduleFactory
	EmployeeShift     *EmployeeShiftFactory
	Payment           *PaymentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:              NewUserFactory(),
		Shift:             NewShiftFactory(),
		RecurrencePattern: NewRecurrencePatternFactory(),
		WorkSchedule:      NewWorkScheduleFactory(),
		EmployeeShift:     NewEmployeeShiftFactory(),
		Payment:           NewPaymentFactory(),
	}
}
