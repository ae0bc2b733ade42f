package service

import (
	"fmt"
	"time"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/recurrence"
	"coffee-shop-backend/internal/repository"

	"github.com/google/uuid"
)

// EmployeeShiftService lists occurrences for the schedule views
type EmployeeShiftService struct {
	repo repository.EmployeeShiftRepositoryInterface
	opts ScheduleOptions
}

// Ensure EmployeeShiftService implements EmployeeShiftServiceInterface
var _ EmployeeShiftServiceInterface = (*EmployeeShiftService)(nil)

// NewEmployeeShiftService creates a new employee shift service
func NewEmployeeShiftService(repo repository.EmployeeShiftRepositoryInterface, opts ScheduleOptions) *EmployeeShiftService {
	return &EmployeeShiftService{repo: repo, opts: opts.withDefaults()}
}

// EmployeeShiftResponse represents an occurrence in API responses
type EmployeeShiftResponse struct {
	ID                uuid.UUID                  `json:"id"`
	WorkScheduleID    *uuid.UUID                 `json:"work_schedule_id,omitempty"`
	ShiftID           uuid.UUID                  `json:"shift_id"`
	ShiftName         string                     `json:"shift_name,omitempty"`
	EmployeeID        *uuid.UUID                 `json:"employee_id,omitempty"`
	EmployeeName      string                     `json:"employee_name,omitempty"`
	ShiftDate         string                     `json:"shift_date"`
	StartTime         string                     `json:"start_time,omitempty"`
	EndTime           string                     `json:"end_time,omitempty"`
	Status            models.EmployeeShiftStatus `json:"status"`
	Notes             string                     `json:"notes,omitempty"`
	OverrideStartTime *string                    `json:"override_start_time,omitempty"`
	OverrideEndTime   *string                    `json:"override_end_time,omitempty"`
}

// EmployeeShiftListResponse represents the occurrences of a date range
type EmployeeShiftListResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Shifts []EmployeeShiftResponse `json:"shifts"`
}

// GetByDateRange lists occurrences in [from, to]. Missing bounds default to the current
// Monday to Sunday week in the business time zone; the span is capped like generation ranges.
func (s *EmployeeShiftService) GetByDateRange(from, to string) (*EmployeeShiftListResponse, error) {
	weekStart, weekEnd := currentWeek(recurrence.DateOf(s.opts.Now(), s.opts.Location))

	start, end := weekStart, weekEnd
	var err error
	if from != "" {
		if start, err = recurrence.ParseDate(from); err != nil {
			return nil, apperrors.NewValidationError("from", err.Error())
		}
	}
	if to != "" {
		if end, err = recurrence.ParseDate(to); err != nil {
			return nil, apperrors.NewValidationError("to", err.Error())
		}
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("to", "from must not be after to")
	}
	if days := recurrence.DaysBetween(start, end) + 1; days > s.opts.MaxGenerationDays {
		return nil, apperrors.NewValidationError("to", fmt.Sprintf("range covers %d days, at most %d allowed", days, s.opts.MaxGenerationDays))
	}

	shifts, err := s.repo.GetByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee shifts: %w", err)
	}

	responses := make([]EmployeeShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = toEmployeeShiftResponse(&shifts[i])
	}

	return &EmployeeShiftListResponse{
		From:   recurrence.FormatDate(start),
		To:     recurrence.FormatDate(end),
		Shifts: responses,
	}, nil
}

// currentWeek returns the Monday and Sunday of the ISO week containing day
func currentWeek(day time.Time) (time.Time, time.Time) {
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

func toEmployeeShiftResponse(es *models.EmployeeShift) EmployeeShiftResponse {
	resp := EmployeeShiftResponse{
		ID:                es.ID,
		WorkScheduleID:    es.WorkScheduleID,
		ShiftID:           es.ShiftID,
		EmployeeID:        es.EmployeeID,
		ShiftDate:         recurrence.FormatDate(es.ShiftDate),
		Status:            es.Status,
		Notes:             es.Notes,
		OverrideStartTime: es.OverrideStartTime,
		OverrideEndTime:   es.OverrideEndTime,
	}
	if es.Shift != nil {
		resp.ShiftName = es.Shift.Name
		resp.StartTime = es.Shift.StartTime
		resp.EndTime = es.Shift.EndTime
	}
	if es.OverrideStartTime != nil {
		resp.StartTime = *es.OverrideStartTime
	}
	if es.OverrideEndTime != nil {
		resp.EndTime = *es.OverrideEndTime
	}
	if es.Employee != nil {
		resp.EmployeeName = es.Employee.FullName
		if resp.EmployeeName == "" {
			resp.EmployeeName = es.Employee.Username
		}
	}
	return resp
}
