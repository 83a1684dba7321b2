package server

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/client/processor"
	"github.com/deepaksolulab007/payment-system-stripe/internal/config"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/eventlog"
	"github.com/deepaksolulab007/payment-system-stripe/internal/handlers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/middleware"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
	"github.com/deepaksolulab007/payment-system-stripe/internal/webhook"
)

// Handlers groups every HTTP handler the router exposes.
type Handlers struct {
	Health        *handlers.HealthHandler
	Webhook       *handlers.WebhookHandler
	Payments      *handlers.PaymentHandler
	Refunds       *handlers.RefundHandler
	Payouts       *handlers.PayoutHandler
	Accounts      *handlers.AccountHandler
	Subscriptions *handlers.SubscriptionHandler
	Admin         *handlers.AdminHandler
}

// Deps are the collaborators shared by every component. A single processor client is
// injected everywhere.
type Deps struct {
	Queries           db.Querier
	Processor         processor.Client
	Pinger            handlers.Pinger
	Recorder          eventlog.Recorder
	WebhookSecret     string
	ResyncConcurrency int
	Logger            *zap.Logger
}

// NewHandlers builds the services, the webhook pipeline and the handlers on top of deps.
func NewHandlers(deps Deps) *Handlers {
	log := logger.OrGlobal(deps.Logger)

	payments := services.NewPaymentService(deps.Queries, log)
	refunds := services.NewRefundService(deps.Queries, log)
	payouts := services.NewPayoutService(deps.Queries, log)
	accounts := services.NewAccountService(deps.Queries, deps.Processor, log)
	synchronizer := services.NewSubscriptionSynchronizer(deps.Queries, deps.Processor, log)
	subscriptions := services.NewSubscriptionService(deps.Queries, deps.Processor, synchronizer, log,
		services.WithResyncConcurrency(deps.ResyncConcurrency),
	)
	dashboard := services.NewDashboardService(payments, refunds, payouts, subscriptions, log)
	events := services.NewWebhookEventService(deps.Queries, log)

	dispatcher := webhook.NewDispatcher(webhook.DispatcherDeps{
		Payments:     payments,
		Refunds:      refunds,
		Payouts:      payouts,
		Accounts:     accounts,
		Synchronizer: synchronizer,
		Processor:    deps.Processor,
		Recorder:     deps.Recorder,
		Logger:       log,
	})

	return &Handlers{
		Health:        handlers.NewHealthHandler(deps.Pinger),
		Webhook:       handlers.NewWebhookHandler(webhook.NewVerifier(deps.WebhookSecret), dispatcher, log),
		Payments:      handlers.NewPaymentHandler(payments),
		Refunds:       handlers.NewRefundHandler(refunds),
		Payouts:       handlers.NewPayoutHandler(payouts),
		Accounts:      handlers.NewAccountHandler(accounts),
		Subscriptions: handlers.NewSubscriptionHandler(subscriptions),
		Admin:         handlers.NewAdminHandler(dashboard, events),
	}
}

// RouteOptions control the middleware applied by InitializeRoutes.
type RouteOptions struct {
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
}

func InitializeRoutes(router *gin.Engine, h *Handlers, opts RouteOptions) {
	log := logger.OrGlobal(opts.Logger)

	router.Use(configureCORS(opts.AllowedOrigins))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(log))

	router.GET("/health", h.Health.Health)

	// The processor posts signed events here. No rate limit: rejecting a delivery only
	// causes a redelivery later.
	router.POST("/webhook/stripe", h.Webhook.HandleStripe)

	v1 := router.Group("/api/v1")
	if opts.RateLimiter != nil {
		v1.Use(opts.RateLimiter.Middleware())
	}
	{
		payments := v1.Group("/payments")
		{
			payments.GET("", h.Payments.ListPayments)
			payments.GET("/recent", h.Payments.ListRecentPayments)
			payments.GET("/:payment_intent_id", h.Payments.GetPayment)
		}

		refunds := v1.Group("/refunds")
		{
			refunds.GET("", h.Refunds.ListRefunds)
			refunds.GET("/payment/:payment_intent_id", h.Refunds.ListRefundsForPayment)
			refunds.GET("/:refund_id", h.Refunds.GetRefund)
		}

		payouts := v1.Group("/payouts")
		{
			payouts.GET("", h.Payouts.ListPayouts)
			payouts.GET("/:payout_id/history", h.Payouts.GetPayoutHistory)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", h.Subscriptions.ListSubscriptions)
			subscriptions.GET("/stats", h.Subscriptions.GetSubscriptionStats)
			subscriptions.GET("/by-email/:email", h.Subscriptions.ListSubscriptionsByEmail)
			subscriptions.POST("/resync-customer", h.Subscriptions.ResyncCustomer)
			subscriptions.GET("/:subscription_id", h.Subscriptions.GetSubscription)
			subscriptions.POST("/:subscription_id/resync", h.Subscriptions.ResyncSubscription)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.GET("", h.Accounts.ListAccounts)
			accounts.GET("/:account_id", h.Accounts.GetAccount)
			accounts.POST("/:account_id/refresh", h.Accounts.RefreshAccount)
		}

		v1.GET("/admin/stats", h.Admin.GetStats)
		v1.GET("/webhook-events", h.Admin.ListWebhookEvents)
	}
}

// App owns the long-lived resources behind the router.
type App struct {
	Router      *gin.Engine
	Config      *config.Config
	pool        *pgxpool.Pool
	rateLimiter *middleware.RateLimiter
}

// NewApp connects to the database and the processor and assembles the router.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Log

	pool, err := newPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	stripeClient, err := processor.NewStripeClient(cfg.StripeSecretKey, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to create stripe client: %w", err)
	}

	queries := db.New(pool)

	recorder, err := newRecorder(ctx, cfg, queries, log)
	if err != nil {
		pool.Close()
		return nil, err
	}

	h := NewHandlers(Deps{
		Queries:           queries,
		Processor:         stripeClient,
		Pinger:            pool,
		Recorder:          recorder,
		WebhookSecret:     cfg.StripeWebhookSecret,
		ResyncConcurrency: cfg.ResyncConcurrency,
		Logger:            log,
	})

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	InitializeRoutes(router, h, RouteOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:    limiter,
		Logger:         log,
	})

	return &App{Router: router, Config: cfg, pool: pool, rateLimiter: limiter}, nil
}

// Pool exposes the connection pool, e.g. for migrations at startup.
func (a *App) Pool() *pgxpool.Pool {
	return a.pool
}

// RunBackground starts the rate limiter eviction loop until ctx is done.
func (a *App) RunBackground(ctx context.Context) {
	go a.rateLimiter.Run(ctx)
}

func (a *App) Close() {
	a.pool.Close()
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database connection string: %w", err)
	}

	poolConfig.MaxConns = cfg.DBMaxConns
	poolConfig.MinConns = min(5, cfg.DBMaxConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}

// newRecorder fans outcomes out to the log and the webhook_events table, plus the
// outcome queue when EVENT_LOG_QUEUE_URL is set.
func newRecorder(ctx context.Context, cfg *config.Config, queries db.Querier, log *zap.Logger) (eventlog.Recorder, error) {
	recorders := eventlog.Multi{
		eventlog.NewZapRecorder(log),
		eventlog.NewDBRecorder(queries, log),
	}
	if cfg.EventLogQueueURL == "" {
		return recorders, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	recorders = append(recorders, eventlog.NewSQSRecorder(sqs.NewFromConfig(awsCfg), cfg.EventLogQueueURL, log))
	log.Info("Publishing webhook outcomes to SQS", zap.String("queue_url", cfg.EventLogQueueURL))
	return recorders, nil
}

func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(origins) == 0 {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	if exposed := os.Getenv("CORS_EXPOSED_HEADERS"); exposed != "" {
		for _, header := range strings.Split(exposed, ",") {
			if header = strings.TrimSpace(header); header != "" {
				corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, header)
			}
		}
	}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
