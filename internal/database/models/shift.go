package models

import "github.com/google/uuid"

// Shift is a reusable shift template (name and working hours)
type Shift struct {
	BaseModel
	Name      string `json:"name" gorm:"size:60;not null;uniqueIndex"`
	StartTime string `json:"start_time" gorm:"type:varchar(5);not null"` // HH:MM
	EndTime   string `json:"end_time" gorm:"type:varchar(5);not null"`   // HH:MM
	Active    bool   `json:"active" gorm:"default:true"`

	PositionRules []ShiftPositionRule `json:"position_rules,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// ShiftPositionRule is the staffing rule of a position within a shift
type ShiftPositionRule struct {
	BaseModel
	ShiftID       uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:idx_shift_position"`
	PositionID    uuid.UUID `json:"position_id" gorm:"type:uuid;not null;uniqueIndex:idx_shift_position"`
	Allowed       bool      `json:"allowed" gorm:"default:true"`
	RequiredCount int       `json:"required_count" gorm:"not null;default:0"`

	Position *Position `json:"-" gorm:"foreignKey:PositionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftPositionRule
func (ShiftPositionRule) TableName() string {
	return "shift_position_rules"
}
