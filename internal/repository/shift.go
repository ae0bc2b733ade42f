package repository

import (
	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shift templates and their position rules
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a shift together with its position rules
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift with its position rules
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("PositionRules").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByName retrieves a shift by name
func (r *ShiftRepository) GetByName(name string) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves shifts ordered by start time
func (r *ShiftRepository) GetAll(activeOnly bool) ([]models.Shift, error) {
	var shifts []models.Shift
	query := r.db.Preload("PositionRules")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("start_time ASC, name ASC").Find(&shifts).Error
	return shifts, err
}

// Update saves the shift and replaces its position rules
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("PositionRules").Save(shift).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_id = ?", shift.ID).Delete(&models.ShiftPositionRule{}).Error; err != nil {
			return err
		}
		for i := range shift.PositionRules {
			shift.PositionRules[i].ID = uuid.Nil
			shift.PositionRules[i].ShiftID = shift.ID
		}
		if len(shift.PositionRules) == 0 {
			return nil
		}
		return tx.Create(&shift.PositionRules).Error
	})
}

// Delete deletes a shift; position rules cascade
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}
