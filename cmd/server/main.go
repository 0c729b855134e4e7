package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cyl-castillo/eco-mercado/internal/config"
	"github.com/cyl-castillo/eco-mercado/internal/es"
	"github.com/cyl-castillo/eco-mercado/internal/events"
	"github.com/cyl-castillo/eco-mercado/internal/handlers"
	"github.com/cyl-castillo/eco-mercado/internal/logging"
	"github.com/cyl-castillo/eco-mercado/internal/middleware/requestlog"
	"github.com/cyl-castillo/eco-mercado/internal/store"
	httpserver "github.com/cyl-castillo/eco-mercado/internal/transport/http"
	"github.com/cyl-castillo/eco-mercado/internal/webui"
)

func main() {
	configuration, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	db, err := store.Open(context.Background(), configuration.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatalf("database seed error: %v", err)
	}

	prod := events.NewProducer(configuration.KafkaBrokers)

	var searchHandler *handlers.SearchHandler
	productHandler := &handlers.ProductHandler{DB: db, Producer: prod}
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration, logger)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler = &handlers.SearchHandler{ES: esClient, Index: es.ProductIndex}
		productHandler.ES = esClient
		productHandler.Index = es.ProductIndex
	}

	baseURL := fmt.Sprintf("http://localhost:%d", configuration.Port)
	client := webui.NewClient(baseURL, webui.StaticToken(configuration.APIToken))
	pages := &webui.Pages{
		Boot:      webui.NewBootstrap(client, logger),
		Submitter: &webui.ProductSubmitter{Client: client, Log: logger},
		Log:       logger,
	}

	e := echo.New()
	e.Renderer = webui.NewRenderer()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), requestlog.RequestLogger(logger))

	deps := httpserver.Deps{
		ProductHandler: productHandler,
		RepairHandler:  &handlers.RepairHandler{DB: db},
		AuthHandler:    &handlers.AuthHandler{DB: db, JWTSecret: []byte(configuration.JWTSecret), Producer: prod},
		SearchHandler:  searchHandler,
		Pages:          pages,
		APIToken:       configuration.APIToken,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.Port),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("server started", "port", configuration.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	} else {
		logger.Error("db unwrap error", "error", err)
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
