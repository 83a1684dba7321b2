package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/middleware"
	"github.com/deepaksolulab007/payment-system-stripe/internal/webhook"
)

const (
	// MaxWebhookBodyBytes caps the size of a delivery.
	MaxWebhookBodyBytes = 1 << 20
	SignatureHeader     = "Stripe-Signature"
)

// WebhookHandler is the processor's delivery endpoint.
type WebhookHandler struct {
	verifier   *webhook.Verifier
	dispatcher *webhook.Dispatcher
	logger     *zap.Logger
}

func NewWebhookHandler(verifier *webhook.Verifier, dispatcher *webhook.Dispatcher, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		verifier:   verifier,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// HandleStripe verifies the raw body and dispatches the event. Verification failures
// answer 400; once verified the answer is always 200, whatever the branches did.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	log := middleware.LogWithCorrelationID(c.Request.Context(), h.logger)

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		msg := "unable to read request body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		}
		log.Warn("Webhook body rejected", zap.Error(err))
		c.String(http.StatusBadRequest, "Webhook Error: "+msg)
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader(SignatureHeader))
	if err != nil {
		log.Warn("Webhook signature verification failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Webhook Error: "+err.Error())
		return
	}

	log = log.With(
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
	)
	log.Info("Webhook received")

	report := h.dispatcher.DispatchRaw(c.Request.Context(), event)
	if report.Failed() {
		log.Warn("Webhook processed with branch failures")
	}

	c.String(http.StatusOK, "OK")
}
