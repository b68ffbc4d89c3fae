// File: utflykt/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"utflykt/config"
	"utflykt/database"
	cartRepoPkg "utflykt/database/repository/cart"
	"utflykt/handlers"
	"utflykt/middleware"
	"utflykt/routes"
	"utflykt/services/cart"
	"utflykt/services/catalog"
	"utflykt/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Catalogs: fetched once from the upstream data documents and cached for
	// the process lifetime.
	fetcher := catalog.NewHTTPFetcher()
	excursions := catalog.NewExcursionCatalog(fetcher, config.AppConfig.CatalogBaseURL+config.AppConfig.ExcursionDataPath)
	articles := catalog.NewArticleCatalog(fetcher, config.AppConfig.CatalogBaseURL+config.AppConfig.ArticleDataPath)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	catalog.NewLoader(excursions, articles).LoadAll(loadCtx)
	loadCancel()

	// Cart persistence backend.
	var cartRepo cartRepoPkg.CartRepository
	switch config.AppConfig.CartBackend {
	case "mongo":
		database.InitDB()
		cartRepo = cartRepoPkg.NewMongoCartRepo()
	case "memory":
		cartRepo = cartRepoPkg.NewMemoryCartRepo()
	default:
		utils.InitCartCache()
		cartRepo = cartRepoPkg.NewRedisCartRepo(utils.GetCartCacheClient())
	}
	cartService := cart.NewDefaultCartService(cartRepo, config.AppConfig.CartSortOnInsert)

	catalogHandler := handlers.NewCatalogHandler(excursions, articles)
	cartHandler := handlers.NewCartHandler(cartService)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, catalogHandler, cartHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
