package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gallery/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gallery/internal/cache"
	"gallery/internal/config"
	"gallery/internal/db"
	"gallery/internal/events"
	"gallery/internal/handler"
	"gallery/internal/logger"
	"gallery/internal/metrics"
	"gallery/internal/payment"
	"gallery/internal/repository"
	"gallery/internal/router"
	"gallery/internal/service"
)

// eventBuffer is the number of domain events queued for the broker before
// Emit falls back to publishing inline.
const eventBuffer = 256

// @title Gallery API
// @version 1.0
// @description Catalog, cart, checkout and back-office API of the gallery storefront.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		zl.Fatal("database init", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	if cfg.ResetDB {
		zl.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		zl.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		zl.Warn("redis unreachable, detail cache disabled until it recovers", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange, zl)
		if err != nil {
			zl.Warn("amqp unavailable, events will be dropped", zap.Error(err))
		} else {
			publisher = amqpPublisher
		}
	}
	dispatcher := events.NewDispatcher(publisher, zl, eventBuffer)

	var gateway payment.Gateway = payment.OfflineGateway{}
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey)
	} else {
		zl.Info("STRIPE_SECRET_KEY not set, using offline payment references")
	}

	// Initialize repositories
	artworkRepo := repository.NewArtworkRepository(gormDB)
	artistRepo := repository.NewArtistRepository(gormDB)
	exhibitionRepo := repository.NewExhibitionRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	messageRepo := repository.NewContactMessageRepository(gormDB)
	newsletterRepo := repository.NewNewsletterRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)
	cartStore := cache.NewCartStore(cacheClient, cache.CartTTL)

	// Initialize services
	catalogService := service.NewCatalogService(artworkRepo, artistRepo, exhibitionRepo, cacheClient, zl, nil)
	cartService := service.NewCartService(cartStore, artworkRepo, zl, nil)
	checkoutService := service.NewCheckoutService(artworkRepo, orderRepo, cartStore, gateway, dispatcher, zl, nil)
	contactService := service.NewContactService(messageRepo, dispatcher, zl)
	newsletterService := service.NewNewsletterService(newsletterRepo, dispatcher, zl, nil)
	adminService := service.NewAdminService(statsRepo, orderRepo, messageRepo, artworkRepo, cacheClient, zl, nil)

	sqlDB, err := gormDB.DB()
	if err != nil {
		zl.Fatal("database handle", zap.Error(err))
	}

	e := echo.New()
	router.Register(e, cfg, zl, metrics.New(), router.Handlers{
		Catalog:    handler.NewCatalogHandler(catalogService),
		Cart:       handler.NewCartHandler(cartService),
		Checkout:   handler.NewCheckoutHandler(checkoutService),
		Contact:    handler.NewContactHandler(contactService),
		Newsletter: handler.NewNewsletterHandler(newsletterService),
		Admin:      handler.NewAdminHandler(adminService),
		Health: handler.NewHealthHandler(map[string]handler.Check{
			"database": sqlDB.PingContext,
			"redis":    cacheClient.Ping,
		}),
	})

	addr := ":" + cfg.ServerPort
	go func() {
		zl.Info("server listening", zap.String("addr", addr), zap.String("swagger", "http://localhost"+addr+"/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(); err != nil {
		zl.Error("event dispatcher close", zap.Error(err))
	}
	zl.Info("server stopped")
}
