package service

import (
	"io"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// WorkScheduleServiceInterface defines the interface for work schedule generation and maintenance
type WorkScheduleServiceInterface interface {
	GenerateFromPattern(actorID uuid.UUID, req *GenerateFromPatternRequest) (*GenerateFromPatternResponse, error)
	Delete(actorID, id uuid.UUID) (*DeleteWorkScheduleResponse, error)
	GetAll(page, pageSize int) (*WorkScheduleListResponse, error)
	GetByID(id uuid.UUID) (*WorkScheduleResponse, error)
	GetShifts(id uuid.UUID) ([]EmployeeShiftResponse, error)
}

// EmployeeShiftServiceInterface defines the interface for occurrence listing
type EmployeeShiftServiceInterface interface {
	GetByDateRange(from, to string) (*EmployeeShiftListResponse, error)
}

// RecurrencePatternServiceInterface defines the interface for recurrence pattern administration
type RecurrencePatternServiceInterface interface {
	Create(req *RecurrencePatternRequest) (*RecurrencePatternResponse, error)
	GetByID(id uuid.UUID) (*RecurrencePatternResponse, error)
	GetAll() ([]RecurrencePatternResponse, error)
	Update(id uuid.UUID, req *RecurrencePatternRequest) (*RecurrencePatternResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftServiceInterface defines the interface for shift template administration
type ShiftServiceInterface interface {
	Create(req *ShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetAll(activeOnly bool) ([]ShiftResponse, error)
	Update(id uuid.UUID, req *ShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the interface for revenue reporting
type ReportServiceInterface interface {
	Revenue(req *RevenueReportRequest) (*RevenueReportResponse, error)
	ExportRevenue(req *RevenueReportRequest, w io.Writer) error
}

// PaymentServiceInterface defines the interface for payment gateway callbacks
type PaymentServiceInterface interface {
	HandleVNPayIPN(params map[string][]string) *VNPayIPNResponse
}
