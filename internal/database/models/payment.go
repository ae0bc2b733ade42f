package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the minimal order record payments refer to
type Order struct {
	BaseModel
	Code        string          `json:"code" gorm:"size:40;not null;uniqueIndex"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status      string          `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for Order
func (Order) TableName() string {
	return "orders"
}

// Payment is a payment attempt against an order
type Payment struct {
	BaseModel
	OrderID  uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Status   PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidAt   *time.Time      `json:"paid_at,omitempty" gorm:"index"`
	TxnRef   string          `json:"txn_ref" gorm:"size:100;not null;uniqueIndex"`
	Provider string          `json:"provider" gorm:"size:20"`

	Order *Order `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
