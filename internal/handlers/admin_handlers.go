package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

// AdminHandler serves the dashboard aggregates and the webhook delivery log.
type AdminHandler struct {
	dashboard *services.DashboardService
	events    *services.WebhookEventService
}

func NewAdminHandler(dashboard *services.DashboardService, events *services.WebhookEventService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, events: events}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Stats not available")
		return
	}
	sendSuccess(c, http.StatusOK, stats)
}

// ListWebhookEvents handles GET /webhook-events?event_type=&status=
// where status filters on the recorded outcome.
func (h *AdminHandler) ListWebhookEvents(c *gin.Context) {
	params, page, ok := listParams(c)
	if !ok {
		return
	}
	events, err := h.events.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Webhook events not found")
		return
	}
	sendList(c, events, page)
}
