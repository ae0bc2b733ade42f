package service

import (
	"errors"
	"fmt"
	"time"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/recurrence"
	"coffee-shop-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurrencePatternService handles business logic for stored recurrence rules
type RecurrencePatternService struct {
	repo          repository.RecurrencePatternRepositoryInterface
	workSchedules repository.WorkScheduleRepositoryInterface
	validator     *validator.Validate
}

// Ensure RecurrencePatternService implements RecurrencePatternServiceInterface
var _ RecurrencePatternServiceInterface = (*RecurrencePatternService)(nil)

// NewRecurrencePatternService creates a new recurrence pattern service
func NewRecurrencePatternService(repo repository.RecurrencePatternRepositoryInterface, workSchedules repository.WorkScheduleRepositoryInterface, validator *validator.Validate) *RecurrencePatternService {
	return &RecurrencePatternService{
		repo:          repo,
		workSchedules: workSchedules,
		validator:     validator,
	}
}

// RecurrencePatternRequest represents the request to create or update a recurrence pattern
type RecurrencePatternRequest struct {
	Type         string  `json:"type" validate:"required" example:"WEEKLY"`
	IntervalDays *int    `json:"interval_days,omitempty" validate:"omitempty,min=1,max=365" example:"2"`
	DayOfWeek    *string `json:"day_of_week,omitempty" example:"MONDAY"`
}

// RecurrencePatternResponse represents a recurrence pattern in API responses
type RecurrencePatternResponse struct {
	ID           uuid.UUID             `json:"id"`
	Type         models.RecurrenceType `json:"type"`
	IntervalDays *int                  `json:"interval_days,omitempty"`
	DayOfWeek    *string               `json:"day_of_week,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// Create creates a new recurrence pattern
func (s *RecurrencePatternService) Create(req *RecurrencePatternRequest) (*RecurrencePatternResponse, error) {
	pattern, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUnique(pattern, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.repo.Create(pattern); err != nil {
		return nil, fmt.Errorf("failed to create recurrence pattern: %w", err)
	}

	resp := toRecurrencePatternResponse(pattern)
	return &resp, nil
}

// GetByID retrieves a recurrence pattern by ID
func (s *RecurrencePatternService) GetByID(id uuid.UUID) (*RecurrencePatternResponse, error) {
	pattern, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurrencePatternNotFound
		}
		return nil, fmt.Errorf("failed to get recurrence pattern: %w", err)
	}
	resp := toRecurrencePatternResponse(pattern)
	return &resp, nil
}

// GetAll retrieves all recurrence patterns
func (s *RecurrencePatternService) GetAll() ([]RecurrencePatternResponse, error) {
	patterns, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get recurrence patterns: %w", err)
	}
	responses := make([]RecurrencePatternResponse, len(patterns))
	for i := range patterns {
		responses[i] = toRecurrencePatternResponse(&patterns[i])
	}
	return responses, nil
}

// Update replaces the rule of a recurrence pattern
func (s *RecurrencePatternService) Update(id uuid.UUID, req *RecurrencePatternRequest) (*RecurrencePatternResponse, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurrencePatternNotFound
		}
		return nil, fmt.Errorf("failed to get recurrence pattern: %w", err)
	}

	pattern, err := s.normalize(req)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(pattern, id); err != nil {
		return nil, err
	}

	existing.Type = pattern.Type
	existing.IntervalDays = pattern.IntervalDays
	existing.DayOfWeek = pattern.DayOfWeek
	if err := s.repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update recurrence pattern: %w", err)
	}

	resp := toRecurrencePatternResponse(existing)
	return &resp, nil
}

// Delete deletes a recurrence pattern that no work schedule references
func (s *RecurrencePatternService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecurrencePatternNotFound
		}
		return fmt.Errorf("failed to get recurrence pattern: %w", err)
	}

	inUse, err := s.workSchedules.CountByRecurrencePatternID(id)
	if err != nil {
		return fmt.Errorf("failed to check recurrence pattern usage: %w", err)
	}
	if inUse > 0 {
		return apperrors.ErrRecurrencePatternInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete recurrence pattern: %w", err)
	}
	return nil
}

// normalize validates the request and keeps only the field relevant to its type
func (s *RecurrencePatternService) normalize(req *RecurrencePatternRequest) (*models.RecurrencePattern, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	t, ok := recurrence.ParseType(req.Type)
	if !ok {
		return nil, apperrors.NewValidationError("type", "must be DAILY or WEEKLY")
	}

	pattern := &models.RecurrencePattern{Type: t}
	switch t {
	case models.RecurrenceDaily:
		if req.IntervalDays == nil {
			return nil, apperrors.NewValidationError("interval_days", "is required for DAILY")
		}
		interval := *req.IntervalDays
		pattern.IntervalDays = &interval
	case models.RecurrenceWeekly:
		if req.DayOfWeek == nil {
			return nil, apperrors.NewValidationError("day_of_week", "is required for WEEKLY")
		}
		wd, err := recurrence.ParseWeekday(*req.DayOfWeek)
		if err != nil {
			return nil, apperrors.NewValidationError("day_of_week", err.Error())
		}
		name := recurrence.WeekdayName(wd)
		pattern.DayOfWeek = &name
	}
	return pattern, nil
}

func (s *RecurrencePatternService) ensureUnique(pattern *models.RecurrencePattern, self uuid.UUID) error {
	existing, err := s.repo.FindByRule(pattern.Type, pattern.IntervalDays, pattern.DayOfWeek)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check recurrence pattern uniqueness: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrRecurrencePatternExists
	}
	return nil
}

func toRecurrencePatternResponse(p *models.RecurrencePattern) RecurrencePatternResponse {
	return RecurrencePatternResponse{
		ID:           p.ID,
		Type:         p.Type,
		IntervalDays: p.IntervalDays,
		DayOfWeek:    p.DayOfWeek,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}
