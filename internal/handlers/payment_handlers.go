package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// ListPayments handles GET /payments?status=&email=&limit=&offset=
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	payments, err := h.payments.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Payments not found")
		return
	}
	sendList(c, payments, page)
}

// ListRecentPayments handles GET /payments/recent?limit=
func (h *PaymentHandler) ListRecentPayments(c *gin.Context) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	page.Offset, page.Page = 0, 1

	payments, err := h.payments.ListRecent(c.Request.Context(), page.Limit)
	if err != nil {
		handleServiceError(c, err, "Payments not found")
		return
	}
	sendList(c, payments, page)
}

// GetPayment handles GET /payments/:payment_intent_id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.payments.GetByPaymentIntentID(c.Request.Context(), c.Param("payment_intent_id"))
	if err != nil {
		handleServiceError(c, err, "Payment not found")
		return
	}
	sendSuccess(c, http.StatusOK, payment)
}
