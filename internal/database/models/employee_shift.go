package models

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeShift is a single occurrence: one shift on one date, optionally assigned to an employee.
// WorkScheduleID is a weak back-reference; deleting the schedule sets it to NULL.
type EmployeeShift struct {
	BaseModel
	WorkScheduleID    *uuid.UUID          `json:"work_schedule_id,omitempty" gorm:"type:uuid;index"`
	ShiftID           uuid.UUID           `json:"shift_id" gorm:"type:uuid;not null;index"`
	EmployeeID        *uuid.UUID          `json:"employee_id,omitempty" gorm:"type:uuid;index"`
	ShiftDate         time.Time           `json:"shift_date" gorm:"type:date;not null;index"`
	Status            EmployeeShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'assigned'"`
	Notes             string              `json:"notes" gorm:"type:text"`
	OverrideStartTime *string             `json:"override_start_time,omitempty" gorm:"type:varchar(5)"`
	OverrideEndTime   *string             `json:"override_end_time,omitempty" gorm:"type:varchar(5)"`
	CreatedBy         uuid.UUID           `json:"created_by" gorm:"type:uuid;not null"`

	WorkSchedule *WorkSchedule `json:"-" gorm:"foreignKey:WorkScheduleID;constraint:OnDelete:SET NULL"`
	Shift        *Shift        `json:"-" gorm:"foreignKey:ShiftID;constraint:OnDelete:RESTRICT"`
	Employee     *User         `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for EmployeeShift
func (EmployeeShift) TableName() string {
	return "employee_shifts"
}
