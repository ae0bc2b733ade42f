package models

import "strings"

// Role defines the access role of a user
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// RecurrenceType defines how a recurrence pattern repeats
type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "DAILY"
	RecurrenceWeekly RecurrenceType = "WEEKLY"
)

// IsValid checks if the RecurrenceType is valid
func (t RecurrenceType) IsValid() bool {
	switch t {
	case RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

// ParseRecurrenceType normalizes a user supplied type; unknown values are returned as-is
func ParseRecurrenceType(s string) RecurrenceType {
	return RecurrenceType(strings.ToUpper(strings.TrimSpace(s)))
}

// EmployeeShiftStatus defines the lifecycle status of an occurrence
type EmployeeShiftStatus string

const (
	EmployeeShiftAssigned  EmployeeShiftStatus = "assigned"
	EmployeeShiftConfirmed EmployeeShiftStatus = "confirmed"
	EmployeeShiftCompleted EmployeeShiftStatus = "completed"
	EmployeeShiftAbsent    EmployeeShiftStatus = "absent"
	EmployeeShiftCancelled EmployeeShiftStatus = "cancelled"
)

// PaymentStatus defines the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// IsValid checks if the PaymentStatus is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}
