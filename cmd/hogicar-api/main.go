// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hogicar/internal/amadeus"
	"hogicar/internal/config"
	httptransport "hogicar/internal/http"
	"hogicar/internal/infra"
	"hogicar/internal/logging"
	"hogicar/internal/modules/booking"
	"hogicar/internal/modules/car"
	"hogicar/internal/modules/location"
	"hogicar/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	var locationStore *location.Store
	if cfg.RedisAddr != "" {
		locationStore = location.NewStore(infra.NewRedis(cfg.RedisAddr))
	}

	var remote location.Remote
	if cfg.AmadeusConfigured() {
		client, err := amadeus.NewClient(cfg.AmadeusBaseURL, cfg.AmadeusClientID, cfg.AmadeusClientSecret)
		if err != nil {
			logger.Fatal("amadeus init", zap.Error(err))
		}
		remote = client
	} else {
		logger.Warn("amadeus credentials not configured, location suggest serves static data")
	}

	pricingSvc := pricing.NewService()

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, pricingSvc, logger)

	locationSvc := location.NewService(remote, locationStore, logger)
	carSvc := car.NewService()

	router := httptransport.NewRouter(bookingSvc, locationSvc, carSvc, logger)
	server := &http.Server{Addr: ":" + cfg.AppPort, Handler: router}

	go func() {
		logger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
