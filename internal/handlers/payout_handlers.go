package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

type PayoutHandler struct {
	payouts *services.PayoutService
}

func NewPayoutHandler(payouts *services.PayoutService) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

// ListPayouts lists payout events newest first.
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	events, err := h.payouts.ListEvents(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Payouts not found")
		return
	}
	sendList(c, events, page)
}

// GetPayoutHistory handles GET /payouts/:payout_id/history, oldest first.
func (h *PayoutHandler) GetPayoutHistory(c *gin.Context) {
	payoutID := c.Param("payout_id")
	history, err := h.payouts.History(c.Request.Context(), payoutID)
	if err != nil {
		handleServiceError(c, err, "Payout not found")
		return
	}
	if len(history) == 0 {
		handleServiceError(c, apperrors.NewNotFound("payout", payoutID, nil), "Payout not found")
		return
	}
	sendList(c, history, helpers.PaginationParams{Page: 1})
}
