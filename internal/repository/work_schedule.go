package repository

import (
	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkScheduleRepository handles database operations for work schedules
type WorkScheduleRepository struct {
	db *gorm.DB
}

// NewWorkScheduleRepository creates a new work schedule repository
func NewWorkScheduleRepository(db *gorm.DB) *WorkScheduleRepository {
	return &WorkScheduleRepository{db: db}
}

// Create creates a new work schedule
func (r *WorkScheduleRepository) Create(schedule *models.WorkSchedule) error {
	return r.db.Omit("Creator", "RecurrencePattern").Create(schedule).Error
}

// GetByID retrieves a work schedule by ID with its recurrence pattern
func (r *WorkScheduleRepository) GetByID(id uuid.UUID) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule
	err := r.db.Preload("RecurrencePattern").First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetAll retrieves work schedules, most recent range first
func (r *WorkScheduleRepository) GetAll(limit, offset int) ([]models.WorkSchedule, int64, error) {
	var schedules []models.WorkSchedule
	var total int64

	if err := r.db.Model(&models.WorkSchedule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("RecurrencePattern").Order("start_date DESC, created_at DESC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// CountByRecurrencePatternID counts schedules referencing a recurrence pattern
func (r *WorkScheduleRepository) CountByRecurrencePatternID(patternID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkSchedule{}).Where("recurrence_pattern_id = ?", patternID).Count(&count).Error
	return count, err
}

// Delete deletes a work schedule
func (r *WorkScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkSchedule{}, "id = ?", id).Error
}
