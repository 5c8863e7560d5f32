package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/gateway"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/controller"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/middleware"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/router"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/implementations"
	"github.com/api-sage/booking-marketplace/src/internal/config"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/metrics"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/services"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
}

// checkServeConfig refuses settings that would leave the payment webhook or
// the admin surface unauthenticated.
func checkServeConfig(cfg config.Config) error {
	switch {
	case strings.TrimSpace(cfg.Payment.StripeWebhookSecret) == "":
		return errors.New("STRIPE_WEBHOOK_SECRET is required")
	case strings.TrimSpace(cfg.ChannelID) == "" || strings.TrimSpace(cfg.ChannelKey) == "":
		return errors.New("CHANNEL_ID and CHANNEL_KEY are required")
	}
	return nil
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := checkServeConfig(cfg); err != nil {
		return err
	}

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, err := implementations.Open(openCtx, cfg.DatabaseDSN, poolOptions(cfg))
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	if !skipMigrations {
		if err := implementations.RunMigrations(db); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewPrometheusCollector("marketplace")
	if err := collector.Register(registry); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	handler := newHandler(db, cfg, collector, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newHandler(db *sqlx.DB, cfg config.Config, collector *metrics.PrometheusCollector, metricsHandler http.Handler) http.Handler {
	userRepo := implementations.NewUserRepository(db)
	profileRepo := implementations.NewProfileRepository(db)
	serviceRepo := implementations.NewServiceRepository(db)
	categoryRepo := implementations.NewProductCategoryRepository(db)
	productRepo := implementations.NewProductRepository(db)
	reviewRepo := implementations.NewProductReviewRepository(db)
	orderRepo := implementations.NewOrderRepository(db)
	feedbackRepo := implementations.NewFeedbackRepository(db)
	supportRepo := implementations.NewSupportMessageRepository(db)
	txRepo := implementations.NewTransactionRepository(db)

	stripeGateway := gateway.NewStripeGateway(gateway.StripeConfig{
		SecretKey:         cfg.Payment.StripeSecretKey,
		WebhookSecret:     cfg.Payment.StripeWebhookSecret,
		Timeout:           cfg.Payment.GatewayTimeout,
		MaxNetworkRetries: 2,
	})
	breakerCfg := gateway.DefaultBreakerConfig()
	breakerCfg.OnStateChange = func(name string, to gobreaker.State) {
		collector.RecordCircuitState(name, circuitState(to))
	}
	intents := gateway.NewBreakingIntentCreator(stripeGateway, breakerCfg)
	collector.RecordCircuitState(breakerCfg.Name, circuitState(intents.State()))

	userService := services.NewUserService(userRepo, profileRepo)
	paymentService := services.NewPaymentService(txRepo, intents, stripeGateway, services.PaymentOptions{
		Currency:                 cfg.Payment.Currency,
		RetryWebhookOnStoreError: cfg.Payment.RetryWebhookOnStoreFail,
		Metrics:                  collector,
	})
	catalogService := services.NewCatalogService(serviceRepo, categoryRepo, productRepo, reviewRepo)
	orderService := services.NewOrderService(orderRepo, feedbackRepo, serviceRepo)
	supportService := services.NewSupportService(supportRepo)

	return router.New(
		router.Options{
			UserAuth:       middleware.UserAuth(userService),
			AdminAuth:      middleware.ChannelAuth(cfg.ChannelID, cfg.ChannelKey),
			Metrics:        collector,
			MetricsHandler: metricsHandler,
			AllowedOrigins: cfg.AllowedOrigins,
		},
		controller.NewUserController(userService),
		controller.NewPaymentController(paymentService),
		controller.NewCatalogController(catalogService),
		controller.NewOrderController(orderService),
		controller.NewSupportController(supportService),
	)
}

func circuitState(s gobreaker.State) metrics.CircuitState {
	switch s {
	case gobreaker.StateOpen:
		return metrics.CircuitOpen
	case gobreaker.StateHalfOpen:
		return metrics.CircuitHalfOpen
	default:
		return metrics.CircuitClosed
	}
}
