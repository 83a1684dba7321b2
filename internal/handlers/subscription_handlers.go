package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

type SubscriptionHandler struct {
	subscriptions *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// ResyncCustomerRequest is the body of POST /subscriptions/resync-customer.
type ResyncCustomerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ListSubscriptions returns views with guaranteed period boundaries. Rows missing a
// boundary are refreshed from the processor first.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	subs, err := h.subscriptions.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Subscriptions not found")
		return
	}
	sendList(c, subs, page)
}

func (h *SubscriptionHandler) ListSubscriptionsByEmail(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	subs, err := h.subscriptions.ListByEmail(c.Request.Context(), c.Param("email"), params)
	if err != nil {
		handleServiceError(c, err, "Subscriptions not found")
		return
	}
	sendList(c, subs, page)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sub, err := h.subscriptions.Get(c.Request.Context(), c.Param("subscription_id"))
	if err != nil {
		handleServiceError(c, err, "Subscription not found")
		return
	}
	sendSuccess(c, http.StatusOK, sub)
}

func (h *SubscriptionHandler) GetSubscriptionStats(c *gin.Context) {
	stats, err := h.subscriptions.Stats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Subscriptions not found")
		return
	}
	sendSuccess(c, http.StatusOK, stats)
}

func (h *SubscriptionHandler) ResyncSubscription(c *gin.Context) {
	sub, err := h.subscriptions.Resync(c.Request.Context(), c.Param("subscription_id"))
	if err != nil {
		handleServiceError(c, err, "Subscription not found")
		return
	}
	sendSuccess(c, http.StatusOK, sub)
}

func (h *SubscriptionHandler) ResyncCustomer(c *gin.Context) {
	var req ResyncCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", apperrors.NewValidation("email", err.Error()))
		return
	}
	subs, err := h.subscriptions.ResyncCustomer(c.Request.Context(), req.Email)
	if err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"object": "list", "data": subs})
}
