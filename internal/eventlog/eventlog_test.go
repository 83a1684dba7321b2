package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/testutil"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

type captureRecorder struct {
	entries []Entry
}

func (c *captureRecorder) Record(_ context.Context, e Entry) {
	c.entries = append(c.entries, e)
}

func sampleEntry(outcome Outcome) Entry {
	return Entry{
		EventID:   "evt_1",
		EventType: "refund.updated",
		Branch:    "refund",
		Outcome:   outcome,
		Duration:  12 * time.Millisecond,
	}
}

func TestZapRecorder(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rec := NewZapRecorder(zap.New(core))

	rec.Record(context.Background(), sampleEntry(OutcomeSuccess))

	failed := sampleEntry(OutcomeError)
	failed.ErrorClass = "transient"
	failed.Error = "db down"
	rec.Record(context.Background(), failed)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "success", entries[0].ContextMap()["outcome"])
	assert.Equal(t, "refund", entries[0].ContextMap()["branch"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "transient", entries[1].ContextMap()["error_class"])
}

func TestDBRecorderCountsDeliveries(t *testing.T) {
	q := testutil.NewMemQuerier()
	rec := NewDBRecorder(q, zap.NewNop())
	ctx := context.Background()

	rec.Record(ctx, sampleEntry(OutcomeError))
	rec.Record(ctx, sampleEntry(OutcomeSuccess))

	rows, err := q.ListWebhookEvents(ctx, db.ListWebhookEventsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "success", rows[0].Outcome)
	assert.Equal(t, int32(2), rows[0].Attempts)
}

func TestDBRecorderTruncatesErrors(t *testing.T) {
	q := testutil.NewMemQuerier()
	rec := NewDBRecorder(q, zap.NewNop())

	e := sampleEntry(OutcomeError)
	e.Error = strings.Repeat("x", 5000)
	rec.Record(context.Background(), e)

	rows, err := q.ListWebhookEvents(context.Background(), db.ListWebhookEventsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].ErrorMessage.String, maxStoredErrorLen)
}

func TestDBRecorderKeepsErrorsValidUTF8(t *testing.T) {
	q := testutil.NewMemQuerier()
	rec := NewDBRecorder(q, zap.NewNop())

	e := sampleEntry(OutcomeError)
	e.Error = "x" + strings.Repeat("é", 600)
	rec.Record(context.Background(), e)

	rows, err := q.ListWebhookEvents(context.Background(), db.ListWebhookEventsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	stored := rows[0].ErrorMessage.String
	assert.True(t, utf8.ValidString(stored))
	assert.Equal(t, maxStoredErrorLen-1, len(stored))
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 10, "abc"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"inside rune", "aé", 2, "a"},
		{"rune boundary", "aéb", 3, "aé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateUTF8(tt.in, tt.n))
		})
	}
}

func TestSQSRecorder(t *testing.T) {
	client := &fakeSQS{}
	rec := NewSQSRecorder(client, "https://sqs.local/queue", zap.NewNop())

	rec.Record(context.Background(), sampleEntry(OutcomeSkipped))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "https://sqs.local/queue", *in.QueueUrl)
	assert.Equal(t, "skipped", *in.MessageAttributes["Outcome"].StringValue)
	assert.Equal(t, "refund.updated", *in.MessageAttributes["EventType"].StringValue)

	var decoded Entry
	require.NoError(t, json.Unmarshal([]byte(*in.MessageBody), &decoded))
	assert.Equal(t, "evt_1", decoded.EventID)
}

func TestSQSRecorderSwallowsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := NewSQSRecorder(&fakeSQS{err: errors.New("throttled")}, "q", zap.New(core))

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), sampleEntry(OutcomeSuccess))
	})
	assert.Equal(t, 1, logs.Len())
}

func TestMulti(t *testing.T) {
	a, b := &captureRecorder{}, &captureRecorder{}
	Multi{a, nil, b, Nop{}}.Record(context.Background(), sampleEntry(OutcomeSuccess))

	assert.Len(t, a.entries, 1)
	assert.Len(t, b.entries, 1)
}
