package repository

import (
	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurrencePatternRepository handles database operations for recurrence patterns
type RecurrencePatternRepository struct {
	db *gorm.DB
}

// NewRecurrencePatternRepository creates a new recurrence pattern repository
func NewRecurrencePatternRepository(db *gorm.DB) *RecurrencePatternRepository {
	return &RecurrencePatternRepository{db: db}
}

// Create creates a new recurrence pattern
func (r *RecurrencePatternRepository) Create(pattern *models.RecurrencePattern) error {
	return r.db.Create(pattern).Error
}

// GetByID retrieves a recurrence pattern by ID
func (r *RecurrencePatternRepository) GetByID(id uuid.UUID) (*models.RecurrencePattern, error) {
	var pattern models.RecurrencePattern
	err := r.db.First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetAll retrieves all recurrence patterns
func (r *RecurrencePatternRepository) GetAll() ([]models.RecurrencePattern, error) {
	var patterns []models.RecurrencePattern
	err := r.db.Order("type ASC, interval_days ASC, day_of_week ASC").Find(&patterns).Error
	return patterns, err
}

// FindByRule retrieves the pattern with the same type and rule.
// DAILY patterns match on interval_days, WEEKLY patterns on day_of_week.
func (r *RecurrencePatternRepository) FindByRule(recurrenceType models.RecurrenceType, intervalDays *int, dayOfWeek *string) (*models.RecurrencePattern, error) {
	var pattern models.RecurrencePattern
	query := r.db.Where("type = ?", recurrenceType)
	if recurrenceType == models.RecurrenceDaily {
		query = query.Where("interval_days = ?", intervalDays)
	} else {
		query = query.Where("day_of_week = ?", dayOfWeek)
	}
	if err := query.First(&pattern).Error; err != nil {
		return nil, err
	}
	return &pattern, nil
}

// Update updates a recurrence pattern
func (r *RecurrencePatternRepository) Update(pattern *models.RecurrencePattern) error {
	return r.db.Save(pattern).Error
}

// Delete deletes a recurrence pattern
func (r *RecurrencePatternRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RecurrencePattern{}, "id = ?", id).Error
}
