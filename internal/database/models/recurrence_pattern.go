package models

// RecurrencePattern is a stored rule used to expand an anchor date into repeated dates.
// DAILY patterns carry IntervalDays, WEEKLY patterns carry DayOfWeek (MONDAY..SUNDAY).
type RecurrencePattern struct {
	BaseModel
	Type         RecurrenceType `json:"type" gorm:"type:varchar(10);not null;uniqueIndex:idx_recurrence_interval;uniqueIndex:idx_recurrence_day"`
	IntervalDays *int           `json:"interval_days,omitempty" gorm:"uniqueIndex:idx_recurrence_interval"`
	DayOfWeek    *string        `json:"day_of_week,omitempty" gorm:"type:varchar(10);uniqueIndex:idx_recurrence_day"`
}

// TableName returns the table name for RecurrencePattern
func (RecurrencePattern) TableName() string {
	return "recurrence_patterns"
}
