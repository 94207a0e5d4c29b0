package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"address-api/internal/config"
	"address-api/internal/handler"
	"address-api/internal/logger"
	"address-api/internal/metrics"
	"address-api/internal/repository"
	"address-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

//	@title			Address API
//	@version		0.0.1
//	@description	API for managing named geographic points and searching them by distance.
//	@contact.name	Admin
//	@BasePath		/

//	@tag.name			GET
//	@tag.description	This endpoints are used to display data
//	@tag.name			UPDATE
//	@tag.description	This endpoints are used to update data
//	@tag.name			DELETE
//	@tag.description	This endpoints are used to delete data
//	@tag.name			CREATE
//	@tag.description	This endpoints are used to add new data

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logger.New(config.Environment, config.LogLevel)
	if config.Environment != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot migrate db")
	}

	addressService := service.NewAddressService(repo, logger)
	proximityService := service.NewProximityService(repo, appMetrics, logger)

	r := handler.NewRouter(handler.RouterConfig{
		Addresses:  handler.NewAddressHandler(addressService, logger),
		Proximity:  handler.NewProximityHandler(proximityService, logger),
		DB:         repo,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Middleware: []gin.HandlerFunc{appMetrics.Middleware()},
		Log:        logger,
	})

	server := &http.Server{
		Addr:         config.ServerAddress,
		Handler:      r,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
	}

	go func() {
		logger.Info().Str("address", config.ServerAddress).Msg("starting http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
