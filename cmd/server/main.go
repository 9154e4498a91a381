package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/paysbypays/merchant-dashboard/internal/config"
	"github.com/paysbypays/merchant-dashboard/internal/handler"
	"github.com/paysbypays/merchant-dashboard/internal/middleware"
	"github.com/paysbypays/merchant-dashboard/internal/monitoring"
	"github.com/paysbypays/merchant-dashboard/internal/service"
	"github.com/paysbypays/merchant-dashboard/internal/store"
	"github.com/paysbypays/merchant-dashboard/internal/upstream"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	recordStore := store.New()
	client := upstream.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	refresher := store.NewRefresher(recordStore, client, cfg.RefreshInterval)

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go refresher.Run(refreshCtx)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(monitoring.Metrics())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(recordStore)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(router, recordStore, refresher, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.APIBaseURL).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stopRefresh()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, recordStore *store.Store, refresher *store.Refresher, cfg *config.Config) {
	aggService := service.NewAggregationService()
	queryService := service.NewQueryService()

	dashboardHandler := handler.NewDashboardHandler(recordStore, aggService, queryService)
	txnHandler := handler.NewTransactionHandler(recordStore, aggService, queryService, cfg.DefaultPageSize)
	merchantHandler := handler.NewMerchantHandler(recordStore, aggService, queryService)
	refreshHandler := handler.NewRefreshHandler(refresher, recordStore)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/transactions", txnHandler.List)
		api.GET("/merchants", merchantHandler.List)
		api.POST("/refresh", refreshHandler.Refresh)
	}
}
