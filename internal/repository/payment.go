package repository

import (
	"time"

	"coffee-shop-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments and their orders
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Omit("Order").Create(payment).Error
}

// GetByTxnRef retrieves a payment by its gateway transaction reference
func (r *PaymentRepository) GetByTxnRef(txnRef string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "txn_ref = ?", txnRef).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPaidBetween retrieves paid payments with paid_at in [from, to); nil bounds are open
func (r *PaymentRepository) GetPaidBetween(from, to *time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	query := r.db.Where("status = ? AND paid_at IS NOT NULL", models.PaymentPaid)
	if from != nil {
		query = query.Where("paid_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("paid_at < ?", *to)
	}
	err := query.Order("paid_at ASC").Find(&payments).Error
	return payments, err
}

// Update saves a payment
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Omit("Order").Save(payment).Error
}

// UpdateOrderStatus sets the status of the order a payment belongs to
func (r *PaymentRepository) UpdateOrderStatus(orderID uuid.UUID, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error
}
