package webhook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/testutil"
	"github.com/deepaksolulab007/payment-system-stripe/internal/webhook"
)

func init() {
	logger.InitLogger("test")
}

func TestVerifier_Verify(t *testing.T) {
	payload := testutil.EventPayload(t, "evt_1", "refund.created", testutil.RefundObject("re_1", "pi_1", "pending"))
	valid := testutil.Sign(t, payload, testutil.TestWebhookSecret)

	stale := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testutil.TestWebhookSecret,
		Timestamp: time.Now().Add(-time.Hour),
	}).Header

	tampered := append([]byte{}, payload...)
	tampered = append(tampered, ' ')

	tests := []struct {
		name    string
		secret  string
		payload []byte
		header  string
		wantErr bool
	}{
		{name: "valid signature", secret: testutil.TestWebhookSecret, payload: payload, header: valid},
		{name: "wrong secret", secret: "whsec_other", payload: payload, header: valid, wantErr: true},
		{name: "forged header", secret: testutil.TestWebhookSecret, payload: payload, header: "t=1,v1=deadbeef", wantErr: true},
		{name: "malformed header", secret: testutil.TestWebhookSecret, payload: payload, header: "garbage", wantErr: true},
		{name: "body altered after signing", secret: testutil.TestWebhookSecret, payload: tampered, header: valid, wantErr: true},
		{name: "timestamp outside tolerance", secret: testutil.TestWebhookSecret, payload: payload, header: stale, wantErr: true},
		{name: "missing header", secret: testutil.TestWebhookSecret, payload: payload, header: "", wantErr: true},
		{name: "secret not configured", secret: "", payload: payload, header: valid, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := webhook.NewVerifier(tt.secret).Verify(tt.payload, tt.header)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsAuthentication(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "evt_1", event.ID)
			assert.Equal(t, "refund.created", string(event.Type))
		})
	}
}

func TestVerifier_CustomTolerance(t *testing.T) {
	payload := testutil.EventPayload(t, "evt_1", "refund.created", testutil.RefundObject("re_1", "pi_1", "pending"))
	header := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testutil.TestWebhookSecret,
		Timestamp: time.Now().Add(-10 * time.Minute),
	}).Header

	_, err := webhook.NewVerifier(testutil.TestWebhookSecret, webhook.WithTolerance(time.Hour)).Verify(payload, header)
	assert.NoError(t, err)
}

func TestVerifier_MessagesNameTheFailure(t *testing.T) {
	_, err := webhook.NewVerifier("").Verify([]byte("{}"), "t=1,v1=x")
	assert.ErrorIs(t, err, webhook.ErrSecretMisconfigured)

	_, err = webhook.NewVerifier(testutil.TestWebhookSecret).Verify([]byte("{}"), "")
	assert.ErrorIs(t, err, webhook.ErrMissingSignature)
}
