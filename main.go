package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-frontdesk/backend"
	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
	"hotel-frontdesk/models"
	"hotel-frontdesk/push"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	perms := middleware.ParsePermissions(cfg.Permissions)

	api := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, logger)
	store := services.NewGuestStore()

	// Initialize services
	guestService := services.NewGuestService(store, api, logger)
	checkoutService := services.NewCheckoutService(store, api, logger)
	dashboardService := services.NewDashboardService(store, api, logger)
	roomService := services.NewRoomService(store)
	exportService := services.NewExportService(store)

	// Initial load; a failure degrades to the sample dataset and the desk
	// sees the error via /api/status.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	if err := guestService.LoadAll(loadCtx); err != nil {
		logger.Warn("initial load failed, serving sample data until refresh", zap.Error(err))
	}
	cancelLoad()

	// Push channel: one subscription per station lifetime. Cache events go
	// to the guest reducer; activity events invalidate the dashboard.
	subscriber := push.NewSubscriber(cfg.BackendWSURL, logger)
	subscriber.NotifyState(guestService.SetPushConnected)
	go subscriber.Run(context.Background(), func(evt models.Event) {
		guestService.HandleEvent(evt)
		if evt.Type == models.EventActivityUpdated {
			dashboardService.Invalidate()
		}
	})

	// Optional periodic reload on top of push-driven invalidation.
	var refreshStop chan struct{}
	if cfg.RefreshInterval > 0 {
		refreshStop = make(chan struct{})
		go func() {
			ticker := time.NewTicker(cfg.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					if err := guestService.LoadAll(ctx); err != nil {
						logger.Warn("periodic reload failed", zap.Error(err))
					}
					cancel()
				case <-refreshStop:
					return
				}
			}
		}()
	}

	// Initialize controllers
	guestController := controllers.NewGuestController(guestService, exportService, logger)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	roomController := controllers.NewRoomController(roomService)
	dashboardController := controllers.NewDashboardController(dashboardService, guestService)

	router := routes.SetupRouter(guestController, checkoutController, roomController, dashboardController, perms, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("front-desk station starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	// Push channel closes exactly once; the refresher stops with it.
	subscriber.Close()
	if refreshStop != nil {
		close(refreshStop)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("station stopped gracefully")
}
