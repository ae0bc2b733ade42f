package service

import (
	"errors"
	"net/url"
	"time"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/logger"
	"coffee-shop-backend/internal/payment"
	"coffee-shop-backend/internal/repository"

	"gorm.io/gorm"
)

// PaymentService settles payments from gateway callbacks
type PaymentService struct {
	payments   repository.PaymentRepositoryInterface
	transactor repository.TransactorInterface
	signer     *payment.Signer
	now        func() time.Time
}

// Ensure PaymentService implements PaymentServiceInterface
var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new payment service
func NewPaymentService(payments repository.PaymentRepositoryInterface, transactor repository.TransactorInterface, signer *payment.Signer, now func() time.Time) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{
		payments:   payments,
		transactor: transactor,
		signer:     signer,
		now:        now,
	}
}

// VNPayIPNResponse is the acknowledgement VNPay expects from an IPN call
type VNPayIPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// HandleVNPayIPN verifies an IPN callback and settles the referenced payment.
// The gateway always receives a response code; errors never escape as HTTP failures.
func (s *PaymentService) HandleVNPayIPN(params map[string][]string) *VNPayIPNResponse {
	values := url.Values(params)
	txnRef := values.Get(payment.ParamTxnRef)
	log := logger.New().WithField("txn_ref", txnRef)

	if !s.signer.Verify(values) {
		log.Warn("vnpay ipn rejected: invalid signature")
		return &VNPayIPNResponse{RspCode: payment.RspInvalidSignature, Message: "Invalid Checksum"}
	}

	amount, err := payment.FromWireAmount(values.Get(payment.ParamAmount))
	if err != nil {
		return &VNPayIPNResponse{RspCode: payment.RspInvalidAmount, Message: "Invalid amount"}
	}

	var rsp *VNPayIPNResponse
	err = s.transactor.RunInTransaction(func(repos repository.Repositories) error {
		p, err := repos.Payments.GetByTxnRef(txnRef)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				rsp = &VNPayIPNResponse{RspCode: payment.RspOrderNotFound, Message: "Order not found"}
				return nil
			}
			return err
		}
		if !p.Amount.Equal(amount) {
			rsp = &VNPayIPNResponse{RspCode: payment.RspInvalidAmount, Message: apperrors.ErrPaymentAmountDiffer.Error()}
			return nil
		}
		if p.Status != models.PaymentPending {
			rsp = &VNPayIPNResponse{RspCode: payment.RspAlreadyConfirmed, Message: "Order already confirmed"}
			return nil
		}

		orderStatus := string(models.PaymentCancelled)
		if values.Get(payment.ParamResponseCode) == payment.RspSuccess {
			paidAt := s.now()
			p.Status = models.PaymentPaid
			p.PaidAt = &paidAt
			orderStatus = string(models.PaymentPaid)
		} else {
			p.Status = models.PaymentCancelled
		}
		if err := repos.Payments.Update(p); err != nil {
			return err
		}
		if err := repos.Payments.UpdateOrderStatus(p.OrderID, orderStatus); err != nil {
			return err
		}

		log.WithField("status", p.Status).Info("vnpay payment settled")
		rsp = &VNPayIPNResponse{RspCode: payment.RspSuccess, Message: "Confirm Success"}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("vnpay ipn failed")
		return &VNPayIPNResponse{RspCode: payment.RspUnknownError, Message: "Unknown error"}
	}
	return rsp
}
