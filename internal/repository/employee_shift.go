package repository

import (
	"time"

	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// EmployeeShiftRepository handles database operations for occurrences.
// Create and Delete run in their own (nested) transaction, so a failed row inside a
// larger transaction rolls back to a savepoint instead of aborting the whole batch.
type EmployeeShiftRepository struct {
	db *gorm.DB
}

// NewEmployeeShiftRepository creates a new employee shift repository
func NewEmployeeShiftRepository(db *gorm.DB) *EmployeeShiftRepository {
	return &EmployeeShiftRepository{db: db}
}

// Create creates a new occurrence
func (r *EmployeeShiftRepository) Create(shift *models.EmployeeShift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("WorkSchedule", "Shift", "Employee").Create(shift).Error
	})
}

// GetByDate retrieves occurrences on a civil date
func (r *EmployeeShiftRepository) GetByDate(date time.Time) ([]models.EmployeeShift, error) {
	var shifts []models.EmployeeShift
	err := r.db.Where("shift_date = ?", date.Format(dateLayout)).Order("created_at ASC").Find(&shifts).Error
	return shifts, err
}

// GetByDateRange retrieves occurrences in the inclusive range [from, to]
func (r *EmployeeShiftRepository) GetByDateRange(from, to time.Time) ([]models.EmployeeShift, error) {
	var shifts []models.EmployeeShift
	err := r.db.Preload("Shift").Preload("Employee").
		Where("shift_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("shift_date ASC, created_at ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetByWorkScheduleID retrieves occurrences referencing a work schedule
func (r *EmployeeShiftRepository) GetByWorkScheduleID(scheduleID uuid.UUID) ([]models.EmployeeShift, error) {
	var shifts []models.EmployeeShift
	err := r.db.Where("work_schedule_id = ?", scheduleID).Order("shift_date ASC, created_at ASC").Find(&shifts).Error
	return shifts, err
}

// ExistsByDate checks if any occurrence exists on a civil date
func (r *EmployeeShiftRepository) ExistsByDate(date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.EmployeeShift{}).Where("shift_date = ?", date.Format(dateLayout)).Limit(1).Count(&count).Error
	return count > 0, err
}

// CountByWorkScheduleID counts occurrences still referencing a work schedule
func (r *EmployeeShiftRepository) CountByWorkScheduleID(scheduleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmployeeShift{}).Where("work_schedule_id = ?", scheduleID).Count(&count).Error
	return count, err
}

// CountByShiftID counts occurrences of a shift template
func (r *EmployeeShiftRepository) CountByShiftID(shiftID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmployeeShift{}).Where("shift_id = ?", shiftID).Count(&count).Error
	return count, err
}

// Unlink clears the work schedule reference of an occurrence, keeping the row
func (r *EmployeeShiftRepository) Unlink(id uuid.UUID) error {
	return r.db.Model(&models.EmployeeShift{}).Where("id = ?", id).Update("work_schedule_id", nil).Error
}

// Delete deletes an occurrence
func (r *EmployeeShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.EmployeeShift{}, "id = ?", id).Error
	})
}
