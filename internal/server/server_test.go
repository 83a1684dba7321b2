package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/eventlog"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/middleware"
	"github.com/deepaksolulab007/payment-system-stripe/internal/mocks"
	"github.com/deepaksolulab007/payment-system-stripe/internal/server"
	"github.com/deepaksolulab007/payment-system-stripe/internal/testutil"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type listResponse struct {
	Object     string            `json:"object"`
	Data       []json.RawMessage `json:"data"`
	Pagination struct {
		Limit   int32 `json:"limit"`
		Count   int   `json:"count"`
		HasMore bool  `json:"has_more"`
	} `json:"pagination"`
}

type routerFixture struct {
	router  *gin.Engine
	queries *testutil.MemQuerier
	client  *mocks.MockProcessorClient
}

func newRouter(t *testing.T, pinger fakePinger, limiter *middleware.RateLimiter) *routerFixture {
	t.Helper()

	queries := testutil.NewMemQuerier()
	client := mocks.NewMockProcessorClientForTest(t)
	h := server.NewHandlers(server.Deps{
		Queries:       queries,
		Processor:     client,
		Pinger:        pinger,
		Recorder:      eventlog.NewDBRecorder(queries, zap.NewNop()),
		WebhookSecret: testutil.TestWebhookSecret,
		Logger:        zap.NewNop(),
	})

	router := gin.New()
	server.InitializeRoutes(router, h, server.RouteOptions{RateLimiter: limiter, Logger: zap.NewNop()})
	return &routerFixture{router: router, queries: queries, client: client}
}

func (f *routerFixture) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *routerFixture) deliver(t *testing.T, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(http.MethodPost, "/webhook/stripe", payload, map[string]string{
		"Stripe-Signature": testutil.Sign(t, payload, testutil.TestWebhookSecret),
		"Content-Type":     "application/json",
	})
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)
	payload := testutil.EventPayload(t, "evt_1", "refund.created", testutil.RefundObject("re_1", "pi_1", "pending"))

	tests := []struct {
		name   string
		header map[string]string
	}{
		{name: "missing header", header: nil},
		{name: "wrong secret", header: map[string]string{"Stripe-Signature": testutil.Sign(t, payload, "whsec_other")}},
		{name: "garbage header", header: map[string]string{"Stripe-Signature": "t=1,v1=deadbeef"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodPost, "/webhook/stripe", payload, tt.header)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, strings.HasPrefix(w.Body.String(), "Webhook Error: "), w.Body.String())
		})
	}
	assert.Zero(t, f.queries.Writes())
}

func TestWebhookRejectsOversizedBody(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)
	payload := bytes.Repeat([]byte("a"), (1<<20)+1)

	w := f.deliver(t, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Webhook Error: request body too large", w.Body.String())
}

func TestWebhookRefundIsQueryable(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)

	w := f.deliver(t, testutil.EventPayload(t, "evt_1", "refund.created", testutil.RefundObject("re_1", "pi_1", "pending")))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = f.deliver(t, testutil.EventPayload(t, "evt_2", "refund.updated", testutil.RefundObject("re_1", "pi_1", "succeeded")))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/v1/refunds?limit=10", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int32(10), resp.Pagination.Limit)
	assert.False(t, resp.Pagination.HasMore)

	var refund struct {
		RefundID string `json:"refund_id"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data[0], &refund))
	assert.Equal(t, "re_1", refund.RefundID)
	assert.Equal(t, "succeeded", refund.Status)

	w = f.do(http.MethodGet, "/api/v1/refunds/payment/pi_1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, 1)

	w = f.do(http.MethodGet, "/api/v1/webhook-events", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, 2)
}

func TestWebhookBranchFailureStillAnswersOK(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)

	// No latest_charge: the payment branch fails but the delivery is acknowledged.
	w := f.deliver(t, testutil.EventPayload(t, "evt_1", "payment_intent.succeeded", testutil.PaymentIntentObject("pi_1", "")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/v1/webhook-events?status=error", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, 1)
}

func TestWebhookPaymentFailureLeavesOtherPaymentsUntouched(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)
	f.client.EXPECT().GetCharge(gomock.Any(), "ch_1").Return(testutil.StripeCharge("ch_1", "pi_1"), nil)

	w := f.deliver(t, testutil.EventPayload(t, "evt_1", "payment_intent.succeeded", testutil.PaymentIntentObject("pi_1", "ch_1")))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/v1/payments/pi_1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	before := w.Body.String()

	failed := testutil.PaymentIntentObject("pi_2", "")
	failed["status"] = "requires_payment_method"
	failed["last_payment_error"] = map[string]any{"message": "card declined"}
	w = f.deliver(t, testutil.EventPayload(t, "evt_2", "payment_intent.payment_failed", failed))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = f.do(http.MethodGet, "/api/v1/payments/pi_1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, before, w.Body.String())

	w = f.do(http.MethodGet, "/api/v1/payments/pi_2", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhookUnroutedKindAnswersOK(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)

	w := f.deliver(t, testutil.EventPayload(t, "evt_1", "customer.created", map[string]any{
		"id": "cus_1", "object": "customer", "email": "a@example.com",
	}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = f.do(http.MethodGet, "/api/v1/webhook-events?status=skipped", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w).Data, 1)
}

func TestWebhookReplayWithForgedSignatureIsRejected(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)
	payload := testutil.EventPayload(t, "evt_1", "refund.created", testutil.RefundObject("re_1", "pi_1", "pending"))

	w := f.deliver(t, payload)
	require.Equal(t, http.StatusOK, w.Code)
	writes := f.queries.Writes()

	forged := testutil.Sign(t, payload, "whsec_attacker")
	w = f.do(http.MethodPost, "/webhook/stripe", payload, map[string]string{"Stripe-Signature": forged})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "Webhook Error: "), w.Body.String())
	assert.Equal(t, writes, f.queries.Writes())
}

func TestQueryRoutes(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"payments list", http.MethodGet, "/api/v1/payments", http.StatusOK},
		{"recent payments", http.MethodGet, "/api/v1/payments/recent", http.StatusOK},
		{"missing payment", http.MethodGet, "/api/v1/payments/pi_missing", http.StatusNotFound},
		{"missing refund", http.MethodGet, "/api/v1/refunds/re_missing", http.StatusNotFound},
		{"payouts list", http.MethodGet, "/api/v1/payouts", http.StatusOK},
		{"missing payout history", http.MethodGet, "/api/v1/payouts/po_missing/history", http.StatusNotFound},
		{"subscription stats", http.MethodGet, "/api/v1/subscriptions/stats", http.StatusOK},
		{"subscriptions list", http.MethodGet, "/api/v1/subscriptions", http.StatusOK},
		{"missing subscription", http.MethodGet, "/api/v1/subscriptions/sub_missing", http.StatusNotFound},
		{"accounts list", http.MethodGet, "/api/v1/accounts", http.StatusOK},
		{"missing account", http.MethodGet, "/api/v1/accounts/acct_missing", http.StatusNotFound},
		{"admin stats", http.MethodGet, "/api/v1/admin/stats", http.StatusOK},
		{"bad pagination", http.MethodGet, "/api/v1/payments?limit=abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(tt.method, tt.path, nil, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestResyncCustomerRequiresEmail(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)

	w := f.do(http.MethodPost, "/api/v1/subscriptions/resync-customer", []byte(`{"email":"not-an-email"}`),
		map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		pinger fakePinger
		want   string
	}{
		{"database up", fakePinger{}, "ok"},
		{"database down", fakePinger{err: errors.New("connection refused")}, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouter(t, tt.pinger, nil)
			w := f.do(http.MethodGet, "/health", nil, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])
			assert.Equal(t, tt.want, body["database"])
		})
	}
}

func TestQueryRoutesAreRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 1, zap.NewNop())
	f := newRouter(t, fakePinger{}, limiter)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/payments", nil, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodGet, "/api/v1/payments", nil, nil).Code)

	// The webhook endpoint sits outside the limited group.
	payload := testutil.EventPayload(t, "evt_1", "refund.created", testutil.RefundObject("re_1", "pi_1", "pending"))
	assert.Equal(t, http.StatusOK, f.deliver(t, payload).Code)
}

func TestResponsesCarryCorrelationID(t *testing.T) {
	f := newRouter(t, fakePinger{}, nil)

	w := f.do(http.MethodGet, "/health", nil, map[string]string{middleware.CorrelationIDHeader: "corr-123"})
	assert.Equal(t, "corr-123", w.Header().Get(middleware.CorrelationIDHeader))
}
