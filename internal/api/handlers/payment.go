package handlers

import (
	"net/http"

	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment gateway callbacks
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// VNPayIPN handles GET /payments/vnpay/ipn
// @Summary VNPay instant payment notification
// @Description Verifies the checksum and settles the payment. Always answers 200 with a VNPay response code.
// @Tags payments
// @Produce json
// @Param vnp_TxnRef query string true "Transaction reference"
// @Param vnp_Amount query string true "Amount x100"
// @Param vnp_ResponseCode query string true "Gateway response code"
// @Param vnp_SecureHash query string true "HMAC-SHA512 checksum"
// @Success 200 {object} service.VNPayIPNResponse
// @Router /payments/vnpay/ipn [get]
func (h *PaymentHandler) VNPayIPN(c *gin.Context) {
	c.JSON(http.StatusOK, h.paymentService.HandleVNPayIPN(c.Request.URL.Query()))
}
