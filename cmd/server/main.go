// HTTP API - покупки, обмены, баланс, справочники
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/fidelia/loyalty/internal/api"
	db "github.com/fidelia/loyalty/internal/db"
	interf "github.com/fidelia/loyalty/internal/interfaces"
	services "github.com/fidelia/loyalty/internal/services"
	otel "github.com/fidelia/loyalty/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("LOYALTY_PORT")
	if port == "" {
		panic("env LOYALTY_PORT is not set")
	}

	// tracing
	shutdown := otel.InitTracer(context.Background())
	defer shutdown()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// catalog
	var catalog interf.CatalogStorage
	ct, err := db.NewCatalogDB()
	if err != nil {
		panic(err)
	}
	catalog = ct

	// cache
	var redis interf.CacheStorage
	redis, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		redis = nil
	}

	serv := services.NewLoyaltyService(logger, storage, catalog, redis, nil, nil, nil)

	// api handlers
	r := api.NewHandler(serv, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "loyalty"),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
