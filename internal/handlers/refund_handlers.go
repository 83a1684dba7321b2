package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

type RefundHandler struct {
	refunds *services.RefundService
}

func NewRefundHandler(refunds *services.RefundService) *RefundHandler {
	return &RefundHandler{refunds: refunds}
}

func (h *RefundHandler) ListRefunds(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	refunds, err := h.refunds.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Refunds not found")
		return
	}
	sendList(c, refunds, page)
}

func (h *RefundHandler) GetRefund(c *gin.Context) {
	refund, err := h.refunds.GetByRefundID(c.Request.Context(), c.Param("refund_id"))
	if err != nil {
		handleServiceError(c, err, "Refund not found")
		return
	}
	sendSuccess(c, http.StatusOK, refund)
}

// ListRefundsForPayment handles GET /refunds/payment/:payment_intent_id
func (h *RefundHandler) ListRefundsForPayment(c *gin.Context) {
	refunds, err := h.refunds.ListByPaymentIntent(c.Request.Context(), c.Param("payment_intent_id"))
	if err != nil {
		handleServiceError(c, err, "Refunds not found")
		return
	}
	sendList(c, refunds, helpers.PaginationParams{Page: 1})
}
