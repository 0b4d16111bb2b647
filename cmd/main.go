package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/lawra/internal/checkout"
	"github.com/davidbz/lawra/internal/config"
	"github.com/davidbz/lawra/internal/directory"
	"github.com/davidbz/lawra/internal/domain"
	"github.com/davidbz/lawra/internal/http"
	"github.com/davidbz/lawra/internal/http/middleware"
	"github.com/davidbz/lawra/internal/inflight"
	"github.com/davidbz/lawra/internal/observability"
	"github.com/davidbz/lawra/internal/provider/demo"
	"github.com/davidbz/lawra/internal/provider/openai"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 2 * time.Second
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			if err != nil {
				log.Fatalf("Server failed to start: %v", err)
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server shutdown failed: %v", err)
			}
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Completion client
	if err := container.Provide(func(cfg *openai.Config, logger *zap.Logger) domain.CompletionClient {
		client := openai.NewClient(*cfg)
		if !client.IsConfigured() {
			logger.Warn("OPENAI_API_KEY is not set; chat will answer in demo mode")
		}
		return client
	}); err != nil {
		log.Fatalf("Failed to provide completion client: %v", err)
	}

	// Demo placeholder answers (nil when disabled)
	if err := container.Provide(func(cfg *config.ChatConfig) domain.PlaceholderResponder {
		if !cfg.DemoFallback {
			return nil
		}
		return demo.NewResponder()
	}); err != nil {
		log.Fatalf("Failed to provide demo responder: %v", err)
	}

	// In-flight guard
	if err := container.Provide(newInflightGuard); err != nil {
		log.Fatalf("Failed to provide inflight guard: %v", err)
	}

	// Lawyer catalog
	if err := container.Provide(func(cfg *directory.Config) (domain.ProviderCatalog, error) {
		return directory.Load(cfg)
	}); err != nil {
		log.Fatalf("Failed to provide lawyer catalog: %v", err)
	}

	// Demo payments
	if err := container.Provide(func(cfg *checkout.Config) domain.PaymentProcessor {
		return checkout.NewDemoPaymentSimulator(cfg.SimulatedDelay)
	}); err != nil {
		log.Fatalf("Failed to provide payment simulator: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewChatService); err != nil {
		log.Fatalf("Failed to provide chat service: %v", err)
	}
	if err := container.Provide(domain.NewDirectoryService); err != nil {
		log.Fatalf("Failed to provide directory service: %v", err)
	}
	if err := container.Provide(func(
		catalog domain.ProviderCatalog,
		payments domain.PaymentProcessor,
		cfg *checkout.Config,
		events domain.EventPublisher,
	) *domain.CheckoutService {
		return domain.NewCheckoutService(catalog, payments, cfg.ServiceFeeRate, events)
	}); err != nil {
		log.Fatalf("Failed to provide checkout service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newInflightGuard uses Redis when REDIS_ADDR is set so the one-pending-
// completion rule holds across replicas; otherwise it stays in memory.
func newInflightGuard(cfg *inflight.Config, logger *zap.Logger) domain.InflightGuard {
	if cfg.RedisAddr == "" {
		return inflight.NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed; inflight guard will retry per request",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err))
	}

	return inflight.NewRedis(client, cfg.TTL)
}
