package models

// Position is a staff role in the shop (barista, cashier, ...)
type Position struct {
	BaseModel
	Name        string `json:"name" gorm:"size:60;not null;uniqueIndex" validate:"required,max=60"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
