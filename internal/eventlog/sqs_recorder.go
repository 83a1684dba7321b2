package eventlog

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"go.uber.org/zap"
)

// SQSAPI is the part of *sqs.Client the recorder uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSRecorder publishes entries to a queue for the downstream observability consumer.
type SQSRecorder struct {
	client   SQSAPI
	queueURL string
	logger   *zap.Logger
}

func NewSQSRecorder(client SQSAPI, queueURL string, log *zap.Logger) *SQSRecorder {
	return &SQSRecorder{client: client, queueURL: queueURL, logger: logger.OrGlobal(log)}
}

func (s *SQSRecorder) Record(ctx context.Context, entry Entry) {
	body, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn("Failed to marshal webhook outcome", zap.String("event_id", entry.EventID), zap.Error(err))
		return
	}

	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: aws.String(entry.EventType),
				DataType:    aws.String("String"),
			},
			"Outcome": {
				StringValue: aws.String(string(entry.Outcome)),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		s.logger.Warn("Failed to publish webhook outcome",
			zap.String("event_id", entry.EventID),
			zap.String("queue_url", s.queueURL),
			zap.Error(err),
		)
	}
}
