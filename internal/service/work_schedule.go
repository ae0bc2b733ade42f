package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/logger"
	"coffee-shop-backend/internal/recurrence"
	"coffee-shop-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleOptions carries the clock and calendar settings shared by scheduling services
type ScheduleOptions struct {
	Location          *time.Location
	MaxGenerationDays int
	Now               func() time.Time
}

func (o ScheduleOptions) withDefaults() ScheduleOptions {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.MaxGenerationDays < 1 {
		o.MaxGenerationDays = 366
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// WorkScheduleService generates occurrences from recurrence rules and maintains work schedules
type WorkScheduleService struct {
	workSchedules  repository.WorkScheduleRepositoryInterface
	employeeShifts repository.EmployeeShiftRepositoryInterface
	patterns       repository.RecurrencePatternRepositoryInterface
	transactor     repository.TransactorInterface
	validator      *validator.Validate
	opts           ScheduleOptions
}

// Ensure WorkScheduleService implements WorkScheduleServiceInterface
var _ WorkScheduleServiceInterface = (*WorkScheduleService)(nil)

// NewWorkScheduleService creates a new work schedule service
func NewWorkScheduleService(
	workSchedules repository.WorkScheduleRepositoryInterface,
	employeeShifts repository.EmployeeShiftRepositoryInterface,
	patterns repository.RecurrencePatternRepositoryInterface,
	transactor repository.TransactorInterface,
	validator *validator.Validate,
	opts ScheduleOptions,
) *WorkScheduleService {
	return &WorkScheduleService{
		workSchedules:  workSchedules,
		employeeShifts: employeeShifts,
		patterns:       patterns,
		transactor:     transactor,
		validator:      validator,
		opts:           opts.withDefaults(),
	}
}

// GenerateFromPatternRequest represents the request to expand an anchor date into a work schedule
type GenerateFromPatternRequest struct {
	Name         string     `json:"name" validate:"max=120" example:"January mornings"`
	Description  string     `json:"description"`
	AnchorDate   string     `json:"anchorDate" validate:"required" example:"2024-01-01"`
	StartDate    string     `json:"startDate" validate:"required" example:"2024-01-01"`
	EndDate      string     `json:"endDate" validate:"required" example:"2024-01-31"`
	Type         string     `json:"type" example:"WEEKLY"`
	Interval     *int       `json:"interval,omitempty" validate:"omitempty,min=1" example:"1"`
	DaysOfWeek   []string   `json:"daysOfWeek,omitempty" example:"MON,WED"`
	RecurrenceID *uuid.UUID `json:"recurrenceId,omitempty"`
	Preview      bool       `json:"preview"`
	Overwrite    bool       `json:"overwrite"`
}

// CandidateDate describes one date selected by the recurrence rule
type CandidateDate struct {
	Date        string `json:"date"`
	IsPast      bool   `json:"isPast"`
	HasConflict bool   `json:"hasConflict"`
	WillCreate  bool   `json:"willCreate"`
}

// GenerationPreview is returned when the request only previews the candidates
type GenerationPreview struct {
	TotalCount int             `json:"totalCount"`
	Candidates []CandidateDate `json:"candidates"`
}

// GenerationFailure reports one occurrence that could not be written
type GenerationFailure struct {
	Date      string    `json:"date"`
	Operation string    `json:"operation"`
	ShiftID   uuid.UUID `json:"shiftId"`
	Message   string    `json:"message"`
}

// GenerationCommit summarizes a committed generation
type GenerationCommit struct {
	Created          int                 `json:"created"`
	Updated          int                 `json:"updated"`
	Skipped          int                 `json:"skipped"`
	Conflicts        int                 `json:"conflicts"`
	Candidates       int                 `json:"candidates"`
	AnchorShiftCount int                 `json:"anchorShiftCount"`
	WorkScheduleID   *uuid.UUID          `json:"workScheduleId,omitempty"`
	Warning          string              `json:"warning,omitempty"`
	Failures         []GenerationFailure `json:"failures,omitempty"`
}

// GenerateFromPatternResponse holds exactly one of Preview or Commit
type GenerateFromPatternResponse struct {
	Preview *GenerationPreview
	Commit  *GenerationCommit
}

// DeleteWorkScheduleResponse summarizes a work schedule deletion
type DeleteWorkScheduleResponse struct {
	DeletedFutureShifts int  `json:"deletedFutureShifts"`
	UnlinkedPastShifts  int  `json:"unlinkedPastShifts"`
	WorkScheduleDeleted bool `json:"workScheduleDeleted"`
}

// WorkScheduleResponse represents a work schedule in API responses
type WorkScheduleResponse struct {
	ID                  uuid.UUID                  `json:"id"`
	Name                string                     `json:"name"`
	Description         string                     `json:"description"`
	StartDate           string                     `json:"start_date"`
	EndDate             string                     `json:"end_date"`
	CreatedBy           uuid.UUID                  `json:"created_by"`
	RecurrencePatternID *uuid.UUID                 `json:"recurrence_pattern_id,omitempty"`
	RecurrencePattern   *RecurrencePatternResponse `json:"recurrence_pattern,omitempty"`
	ShiftCount          *int64                     `json:"shift_count,omitempty"`
	CreatedAt           string                     `json:"created_at"`
}

// WorkScheduleListResponse represents a paginated list of work schedules
type WorkScheduleListResponse struct {
	WorkSchedules []WorkScheduleResponse `json:"work_schedules"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type generationPlan struct {
	anchor    time.Time
	start     time.Time
	end       time.Time
	today     time.Time
	patternID *uuid.UUID
	dates     []time.Time
}

// GenerateFromPattern previews or commits the expansion of the anchor date's occurrences
// onto every date selected by the recurrence rule.
func (s *WorkScheduleService) GenerateFromPattern(actorID uuid.UUID, req *GenerateFromPatternRequest) (*GenerateFromPatternResponse, error) {
	plan, err := s.plan(req)
	if err != nil {
		return nil, err
	}

	if req.Preview {
		candidates, err := s.assess(s.employeeShifts, plan, req.Overwrite)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing shifts: %w", err)
		}
		return &GenerateFromPatternResponse{Preview: &GenerationPreview{
			TotalCount: len(candidates),
			Candidates: candidates,
		}}, nil
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	var commit *GenerationCommit
	err = s.transactor.RunInTransaction(func(repos repository.Repositories) error {
		var txErr error
		commit, txErr = s.commit(repos, actorID, req, plan)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate work schedule: %w", err)
	}

	log := logger.New().WithFields(map[string]interface{}{
		"actor":      actorID.String(),
		"start_date": recurrence.FormatDate(plan.start),
		"end_date":   recurrence.FormatDate(plan.end),
		"created":    commit.Created,
		"updated":    commit.Updated,
		"skipped":    commit.Skipped,
		"conflicts":  commit.Conflicts,
		"failures":   len(commit.Failures),
	})
	if commit.WorkScheduleID != nil {
		log = log.WithField("work_schedule_id", commit.WorkScheduleID.String())
	}
	log.Info("work schedule generation completed")

	return &GenerateFromPatternResponse{Commit: commit}, nil
}

func (s *WorkScheduleService) plan(req *GenerateFromPatternRequest) (*generationPlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	anchor, err := recurrence.ParseDate(req.AnchorDate)
	if err != nil {
		return nil, apperrors.NewValidationError("anchorDate", err.Error())
	}
	start, err := recurrence.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate", err.Error())
	}
	end, err := recurrence.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate", err.Error())
	}
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if days := recurrence.DaysBetween(start, end) + 1; days > s.opts.MaxGenerationDays {
		return nil, apperrors.NewValidationError("endDate", fmt.Sprintf("range covers %d days, at most %d allowed", days, s.opts.MaxGenerationDays))
	}

	rule := recurrence.Request{Anchor: anchor, Start: start, End: end, WeekInterval: intOr(req.Interval, 1)}
	plan := &generationPlan{anchor: anchor, start: start, end: end}

	if req.RecurrenceID != nil {
		pattern, err := s.patterns.GetByID(*req.RecurrenceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRecurrencePatternNotFound
			}
			return nil, fmt.Errorf("failed to load recurrence pattern: %w", err)
		}
		plan.patternID = &pattern.ID
		rule.Type = pattern.Type
		switch pattern.Type {
		case models.RecurrenceDaily:
			rule.IntervalDays = intOr(pattern.IntervalDays, 1)
		case models.RecurrenceWeekly:
			if pattern.DayOfWeek != nil {
				wd, err := recurrence.ParseWeekday(*pattern.DayOfWeek)
				if err != nil {
					return nil, fmt.Errorf("stored recurrence pattern %s: %w", pattern.ID, err)
				}
				rule.Weekdays = []time.Weekday{wd}
			}
		}
	} else {
		rule.Type, _ = recurrence.ParseType(req.Type)
		switch rule.Type {
		case models.RecurrenceDaily:
			rule.IntervalDays = intOr(req.Interval, 1)
		case models.RecurrenceWeekly:
			weekdays, err := recurrence.ParseWeekdays(req.DaysOfWeek)
			if err != nil {
				return nil, apperrors.NewValidationError("daysOfWeek", err.Error())
			}
			if len(weekdays) == 0 {
				return nil, apperrors.NewValidationError("daysOfWeek", "at least one weekday is required for WEEKLY")
			}
			rule.Weekdays = weekdays
		}
	}

	plan.dates = recurrence.Candidates(rule)
	plan.today = recurrence.DateOf(s.opts.Now(), s.opts.Location)
	return plan, nil
}

// assess evaluates every candidate date against today and existing occurrences
func (s *WorkScheduleService) assess(shifts repository.EmployeeShiftRepositoryInterface, plan *generationPlan, overwrite bool) ([]CandidateDate, error) {
	candidates := make([]CandidateDate, 0, len(plan.dates))
	for _, d := range plan.dates {
		exists, err := shifts.ExistsByDate(d)
		if err != nil {
			return nil, err
		}
		isPast := !d.After(plan.today)
		candidates = append(candidates, CandidateDate{
			Date:        recurrence.FormatDate(d),
			IsPast:      isPast,
			HasConflict: exists,
			WillCreate:  !isPast && (overwrite || !exists),
		})
	}
	return candidates, nil
}

func (s *WorkScheduleService) commit(repos repository.Repositories, actorID uuid.UUID, req *GenerateFromPatternRequest, plan *generationPlan) (*GenerationCommit, error) {
	candidates, err := s.assess(repos.EmployeeShifts, plan, req.Overwrite)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing shifts: %w", err)
	}

	res := &GenerationCommit{Candidates: len(candidates)}
	eligible := 0
	for _, c := range candidates {
		if c.HasConflict {
			res.Conflicts++
		}
		if c.WillCreate {
			eligible++
		} else {
			res.Skipped++
		}
	}

	anchors, err := repos.EmployeeShifts.GetByDate(plan.anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to load anchor shifts: %w", err)
	}
	res.AnchorShiftCount = len(anchors)
	if len(anchors) == 0 {
		res.Warning = fmt.Sprintf("no shifts found on anchor date %s, nothing was generated", recurrence.FormatDate(plan.anchor))
		return res, nil
	}
	if eligible == 0 {
		return res, nil
	}

	schedule := &models.WorkSchedule{
		Name:                strings.TrimSpace(req.Name),
		Description:         req.Description,
		StartDate:           plan.start,
		EndDate:             plan.end,
		CreatedBy:           actorID,
		RecurrencePatternID: plan.patternID,
	}
	if err := repos.WorkSchedules.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create work schedule: %w", err)
	}
	res.WorkScheduleID = &schedule.ID

	log := logger.New().WithField("work_schedule_id", schedule.ID.String())
	touched := make(map[uuid.UUID]struct{})

	for i, d := range plan.dates {
		if !candidates[i].WillCreate {
			continue
		}
		date := candidates[i].Date

		if candidates[i].HasConflict {
			existing, err := repos.EmployeeShifts.GetByDate(d)
			if err != nil {
				return nil, fmt.Errorf("failed to load shifts on %s: %w", date, err)
			}
			cleared := true
			for _, old := range existing {
				if err := repos.EmployeeShifts.Delete(old.ID); err != nil {
					log.WithError(err).WithField("date", date).Warn("failed to delete existing shift")
					res.Failures = append(res.Failures, GenerationFailure{Date: date, Operation: "delete", ShiftID: old.ShiftID, Message: "failed to delete existing shift"})
					cleared = false
					continue
				}
				res.Updated++
				if old.WorkScheduleID != nil {
					touched[*old.WorkScheduleID] = struct{}{}
				}
			}
			// A date that still holds old occurrences is not replaced.
			if !cleared {
				res.Skipped++
				continue
			}
		}

		for _, anchor := range anchors {
			occurrence := copyOccurrence(anchor, d, schedule.ID, actorID)
			if err := repos.EmployeeShifts.Create(occurrence); err != nil {
				log.WithError(err).WithField("date", date).Warn("failed to create shift")
				res.Failures = append(res.Failures, GenerationFailure{Date: date, Operation: "create", ShiftID: anchor.ShiftID, Message: "failed to create shift"})
				continue
			}
			res.Created++
		}
	}

	if res.Created == 0 {
		touched[schedule.ID] = struct{}{}
	}
	for id := range touched {
		remaining, err := repos.EmployeeShifts.CountByWorkScheduleID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to count shifts of work schedule %s: %w", id, err)
		}
		if remaining > 0 {
			continue
		}
		if err := repos.WorkSchedules.Delete(id); err != nil {
			return nil, fmt.Errorf("failed to delete empty work schedule %s: %w", id, err)
		}
		if id == schedule.ID {
			res.WorkScheduleID = nil
		}
	}

	return res, nil
}

func copyOccurrence(anchor models.EmployeeShift, date time.Time, scheduleID, actorID uuid.UUID) *models.EmployeeShift {
	status := anchor.Status
	if status == "" {
		status = models.EmployeeShiftAssigned
	}
	return &models.EmployeeShift{
		WorkScheduleID:    &scheduleID,
		ShiftID:           anchor.ShiftID,
		EmployeeID:        anchor.EmployeeID,
		ShiftDate:         date,
		Status:            status,
		Notes:             anchor.Notes,
		OverrideStartTime: anchor.OverrideStartTime,
		OverrideEndTime:   anchor.OverrideEndTime,
		CreatedBy:         actorID,
	}
}

// Delete removes future occurrences of the schedule, unlinks past and present ones, and
// deletes the schedule once nothing references it.
func (s *WorkScheduleService) Delete(actorID, id uuid.UUID) (*DeleteWorkScheduleResponse, error) {
	today := recurrence.DateOf(s.opts.Now(), s.opts.Location)
	res := &DeleteWorkScheduleResponse{}

	err := s.transactor.RunInTransaction(func(repos repository.Repositories) error {
		if _, err := repos.WorkSchedules.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrWorkScheduleNotFound
			}
			return fmt.Errorf("failed to load work schedule: %w", err)
		}

		shifts, err := repos.EmployeeShifts.GetByWorkScheduleID(id)
		if err != nil {
			return fmt.Errorf("failed to load shifts: %w", err)
		}
		for _, es := range shifts {
			if recurrence.DateOf(es.ShiftDate, es.ShiftDate.Location()).After(today) {
				if err := repos.EmployeeShifts.Delete(es.ID); err != nil {
					return fmt.Errorf("failed to delete shift %s: %w", es.ID, err)
				}
				res.DeletedFutureShifts++
				continue
			}
			if err := repos.EmployeeShifts.Unlink(es.ID); err != nil {
				return fmt.Errorf("failed to unlink shift %s: %w", es.ID, err)
			}
			res.UnlinkedPastShifts++
		}

		remaining, err := repos.EmployeeShifts.CountByWorkScheduleID(id)
		if err != nil {
			return fmt.Errorf("failed to count shifts: %w", err)
		}
		if remaining == 0 {
			if err := repos.WorkSchedules.Delete(id); err != nil {
				return fmt.Errorf("failed to delete work schedule: %w", err)
			}
			res.WorkScheduleDeleted = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"actor":                 actorID.String(),
		"work_schedule_id":      id.String(),
		"deleted_future_shifts": res.DeletedFutureShifts,
		"unlinked_past_shifts":  res.UnlinkedPastShifts,
		"work_schedule_deleted": res.WorkScheduleDeleted,
	}).Info("work schedule deleted")

	return res, nil
}

// GetAll retrieves work schedules with pagination
func (s *WorkScheduleService) GetAll(page, pageSize int) (*WorkScheduleListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	schedules, total, err := s.workSchedules.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedules: %w", err)
	}

	responses := make([]WorkScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = toWorkScheduleResponse(&schedules[i])
	}

	return &WorkScheduleListResponse{
		WorkSchedules: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetByID retrieves a work schedule with the number of occurrences referencing it
func (s *WorkScheduleService) GetByID(id uuid.UUID) (*WorkScheduleResponse, error) {
	schedule, err := s.workSchedules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	count, err := s.employeeShifts.CountByWorkScheduleID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count shifts: %w", err)
	}

	resp := toWorkScheduleResponse(schedule)
	resp.ShiftCount = &count
	return &resp, nil
}

// GetShifts retrieves the occurrences still linked to a work schedule
func (s *WorkScheduleService) GetShifts(id uuid.UUID) ([]EmployeeShiftResponse, error) {
	if _, err := s.workSchedules.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	shifts, err := s.employeeShifts.GetByWorkScheduleID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]EmployeeShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = toEmployeeShiftResponse(&shifts[i])
	}
	return responses, nil
}

func toWorkScheduleResponse(ws *models.WorkSchedule) WorkScheduleResponse {
	resp := WorkScheduleResponse{
		ID:                  ws.ID,
		Name:                ws.Name,
		Description:         ws.Description,
		StartDate:           recurrence.FormatDate(ws.StartDate),
		EndDate:             recurrence.FormatDate(ws.EndDate),
		CreatedBy:           ws.CreatedBy,
		RecurrencePatternID: ws.RecurrencePatternID,
		CreatedAt:           ws.CreatedAt.Format(time.RFC3339),
	}
	if ws.RecurrencePattern != nil {
		p := toRecurrencePatternResponse(ws.RecurrencePattern)
		resp.RecurrencePattern = &p
	}
	return resp
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
