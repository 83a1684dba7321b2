//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/config"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/server"
)

var ginLambda *ginadapter.GinLambda

func init() {
	// Initialize logger
	logger.InitLogger(config.Stage())

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// The pool lives for the lifetime of the execution environment.
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}

	ginLambda = ginadapter.New(app.Router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("method", req.HTTPMethod),
		zap.String("request_id", req.RequestContext.RequestID),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync() //nolint:errcheck
	lambda.Start(Handler)
}
