package models

import "github.com/google/uuid"

// User represents an administrator or staff member who can be assigned to shifts
type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"size:60;not null;uniqueIndex" validate:"required,min=3,max=60"`
	FullName     string     `json:"full_name" gorm:"size:120" validate:"max=120"`
	Email        string     `json:"email" gorm:"size:200" validate:"omitempty,email"`
	Role         Role       `json:"role" gorm:"type:varchar(20);not null;default:'STAFF'"`
	PasswordHash string     `json:"-" gorm:"size:255"`
	PositionID   *uuid.UUID `json:"position_id,omitempty" gorm:"type:uuid;index"`
	Active       bool       `json:"active" gorm:"default:true"`

	Position *Position `json:"position,omitempty" gorm:"foreignKey:PositionID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
