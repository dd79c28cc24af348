package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mhartwell/fxresolver/internal/application/service"
	"github.com/mhartwell/fxresolver/internal/infrastructure/api"
	"github.com/mhartwell/fxresolver/internal/infrastructure/db"
	"github.com/mhartwell/fxresolver/internal/infrastructure/handler"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
	"github.com/mhartwell/fxresolver/internal/infrastructure/middleware"
)

func main() {
	// .env is optional; environment variables win when both are present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	appLogger := logger.GetDefaultLogger()
	appLogger.Info("Starting exchange rate resolver", map[string]interface{}{
		"log_level": os.Getenv("LOG_LEVEL"),
	})

	// Setup BadgerDB
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", "data")
	}
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	badgerOpts := badger.DefaultOptions(dbPath)
	badgerOpts.Logger = nil

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := badgerDB.Close(); err != nil {
			appLogger.Error("Error closing BadgerDB", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Initialize repositories and services
	rateRepo := db.NewBadgerRateEntryRepository(badgerDB)
	manager := service.NewRateManager(appLogger)
	rateService := service.NewRateService(manager, rateRepo, appLogger)
	conversionService := service.NewConversionService(manager, appLogger)

	feedClient := api.NewRateFeedClient(os.Getenv("FEED_URL"), os.Getenv("FEED_BASE_CURRENCY"), nil, appLogger)
	feedService := service.NewFeedService(feedClient, manager, rateRepo, appLogger)

	// Replay persisted entries before accepting traffic
	restored, err := rateService.Restore(context.Background())
	if err != nil {
		log.Fatalf("Failed to restore persisted rate entries: %v", err)
	}
	appLogger.Info("Rate table ready", map[string]interface{}{
		"restored_entries": restored,
	})

	// Initialize handlers
	rateHandler := handler.NewRateHandler(rateService, appLogger)
	conversionHandler := handler.NewConversionHandler(conversionService, appLogger)
	currencyHandler := handler.NewCurrencyHandler(appLogger)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(appLogger))
	rateHandler.RegisterRoutes(router)
	conversionHandler.RegisterRoutes(router)
	currencyHandler.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		appLogger.Info("Server listening", map[string]interface{}{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if interval := refreshInterval(); interval > 0 {
		group.Go(func() error {
			return runFeedRefresh(ctx, feedService, appLogger, interval)
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		appLogger.Info("Shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// refreshInterval reads FEED_REFRESH_MINUTES; zero disables the
// background feed entirely.
func refreshInterval() time.Duration {
	raw := os.Getenv("FEED_REFRESH_MINUTES")
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}

// runFeedRefresh pulls the daily rate sheet on a fixed interval until the
// context is cancelled. Feed failures are logged and retried on the next
// tick rather than taking the server down.
func runFeedRefresh(ctx context.Context, feed *service.FeedService, log logger.Logger, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			count, err := feed.Refresh(ctx, time.Now().UTC())
			if err != nil {
				log.Error("Feed refresh failed", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}
			log.Info("Feed refresh completed", map[string]interface{}{
				"registered": count,
			})
		}
	}
}
