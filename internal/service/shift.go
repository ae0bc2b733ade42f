package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const timeOfDayLayout = "15:04"

// ShiftService handles business logic for shift templates
type ShiftService struct {
	repo           repository.ShiftRepositoryInterface
	employeeShifts repository.EmployeeShiftRepositoryInterface
	validator      *validator.Validate
}

// Ensure ShiftService implements ShiftServiceInterface
var _ ShiftServiceInterface = (*ShiftService)(nil)

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, employeeShifts repository.EmployeeShiftRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:           repo,
		employeeShifts: employeeShifts,
		validator:      validator,
	}
}

// ShiftPositionRuleRequest is the staffing rule of one position within a shift
type ShiftPositionRuleRequest struct {
	PositionID    uuid.UUID `json:"position_id" validate:"required"`
	Allowed       bool      `json:"allowed"`
	RequiredCount int       `json:"required_count" validate:"min=0,max=50"`
}

// ShiftRequest represents the request to create or update a shift template
type ShiftRequest struct {
	Name          string                     `json:"name" validate:"required,min=1,max=60" example:"Morning"`
	StartTime     string                     `json:"start_time" validate:"required" example:"07:00"`
	EndTime       string                     `json:"end_time" validate:"required" example:"12:00"`
	Active        *bool                      `json:"active,omitempty"`
	PositionRules []ShiftPositionRuleRequest `json:"position_rules,omitempty" validate:"dive"`
}

// ShiftPositionRuleResponse represents a staffing rule in API responses
type ShiftPositionRuleResponse struct {
	PositionID    uuid.UUID `json:"position_id"`
	Allowed       bool      `json:"allowed"`
	RequiredCount int       `json:"required_count"`
}

// ShiftResponse represents a shift template in API responses
type ShiftResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Name          string                      `json:"name"`
	StartTime     string                      `json:"start_time"`
	EndTime       string                      `json:"end_time"`
	Active        bool                        `json:"active"`
	PositionRules []ShiftPositionRuleResponse `json:"position_rules"`
	CreatedAt     string                      `json:"created_at"`
	UpdatedAt     string                      `json:"updated_at"`
}

// Create creates a new shift template
func (s *ShiftService) Create(req *ShiftRequest) (*ShiftResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.ensureUniqueName(name, uuid.Nil); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		Name:          name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Active:        req.Active == nil || *req.Active,
		PositionRules: toPositionRules(req.PositionRules),
	}
	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	resp := toShiftResponse(shift)
	return &resp, nil
}

// GetByID retrieves a shift template by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	resp := toShiftResponse(shift)
	return &resp, nil
}

// GetAll retrieves shift templates, optionally only the active ones
func (s *ShiftService) GetAll(activeOnly bool) ([]ShiftResponse, error) {
	shifts, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = toShiftResponse(&shifts[i])
	}
	return responses, nil
}

// Update updates a shift template and replaces its position rules
func (s *ShiftService) Update(id uuid.UUID, req *ShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != shift.Name {
		if err := s.ensureUniqueName(name, id); err != nil {
			return nil, err
		}
	}

	shift.Name = name
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	if req.Active != nil {
		shift.Active = *req.Active
	}
	shift.PositionRules = toPositionRules(req.PositionRules)

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	resp := toShiftResponse(shift)
	return &resp, nil
}

// Delete deletes a shift template that has no occurrences
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	used, err := s.employeeShifts.CountByShiftID(id)
	if err != nil {
		return fmt.Errorf("failed to check shift usage: %w", err)
	}
	if used > 0 {
		return apperrors.ErrShiftInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func (s *ShiftService) validate(req *ShiftRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	start, err := time.Parse(timeOfDayLayout, req.StartTime)
	if err != nil {
		return apperrors.NewValidationError("start_time", apperrors.ErrInvalidTimeOfDay.Error()+", expected HH:MM")
	}
	end, err := time.Parse(timeOfDayLayout, req.EndTime)
	if err != nil {
		return apperrors.NewValidationError("end_time", apperrors.ErrInvalidTimeOfDay.Error()+", expected HH:MM")
	}
	if !end.After(start) {
		return apperrors.NewValidationError("end_time", "must be after start_time")
	}

	seen := make(map[uuid.UUID]struct{}, len(req.PositionRules))
	for _, rule := range req.PositionRules {
		if _, dup := seen[rule.PositionID]; dup {
			return apperrors.NewValidationError("position_rules", "duplicate position "+rule.PositionID.String())
		}
		seen[rule.PositionID] = struct{}{}
		if !rule.Allowed && rule.RequiredCount > 0 {
			return apperrors.NewValidationError("position_rules", "a disallowed position cannot have a required count")
		}
	}
	return nil
}

func (s *ShiftService) ensureUniqueName(name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check shift name: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrShiftExists
	}
	return nil
}

func toPositionRules(reqs []ShiftPositionRuleRequest) []models.ShiftPositionRule {
	rules := make([]models.ShiftPositionRule, len(reqs))
	for i, r := range reqs {
		rules[i] = models.ShiftPositionRule{
			PositionID:    r.PositionID,
			Allowed:       r.Allowed,
			RequiredCount: r.RequiredCount,
		}
	}
	return rules
}

func toShiftResponse(shift *models.Shift) ShiftResponse {
	rules := make([]ShiftPositionRuleResponse, len(shift.PositionRules))
	for i, r := range shift.PositionRules {
		rules[i] = ShiftPositionRuleResponse{
			PositionID:    r.PositionID,
			Allowed:       r.Allowed,
			RequiredCount: r.RequiredCount,
		}
	}
	return ShiftResponse{
		ID:            shift.ID,
		Name:          shift.Name,
		StartTime:     shift.StartTime,
		EndTime:       shift.EndTime,
		Active:        shift.Active,
		PositionRules: rules,
		CreatedAt:     shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     shift.UpdatedAt.Format(time.RFC3339),
	}
}
