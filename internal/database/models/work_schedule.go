package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkSchedule groups generated occurrences under one record spanning the requested range
type WorkSchedule struct {
	BaseModel
	Name                string     `json:"name" gorm:"size:120;not null"`
	Description         string     `json:"description" gorm:"type:text"`
	StartDate           time.Time  `json:"start_date" gorm:"type:date;not null;index"`
	EndDate             time.Time  `json:"end_date" gorm:"type:date;not null"`
	CreatedBy           uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	RecurrencePatternID *uuid.UUID `json:"recurrence_pattern_id,omitempty" gorm:"type:uuid;index"`

	Creator           *User              `json:"-" gorm:"foreignKey:CreatedBy"`
	RecurrencePattern *RecurrencePattern `json:"recurrence_pattern,omitempty" gorm:"foreignKey:RecurrencePatternID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for WorkSchedule
func (WorkSchedule) TableName() string {
	return "work_schedules"
}
