package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	httpapi "storefront/internal/http"
	"storefront/internal/navigation"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/view"
	"storefront/pkg/config"

	_ "storefront/docs"
)

// @title Storefront API
// @version 1.0
// @description Product cards, edit session, cart and checkout of the storefront.
// @host localhost:9091
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()
	gin.SetMode(gin.ReleaseMode)

	store := repository.NewMemoryStore()
	if cfg.SeedCatalog {
		if err := store.Seed(context.Background()); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	builder, err := view.NewBuilder(cfg.CardCacheSize, logger.Named("cards"))
	if err != nil {
		logger.Fatal("Failed to create card builder", zap.Error(err))
	}
	productsSvc := service.NewProductService(store, store, logger)
	edits := service.NewEditSession(productsSvc, logger)
	catalog := service.NewCatalogService(productsSvc, edits, view.NewAggregator(builder, logger), logger)

	nav := navigation.NewHistory()
	carts := cart.NewMemoryStore()
	ordersSvc := service.NewOrderService(carts, nav, logger.Named("checkout"),
		checkout.WithDelays(cfg.ProcessingDelay, cfg.RedirectDelay))
	defer ordersSvc.Leave()

	srv := httpapi.NewServer(httpapi.Deps{
		Products: productsSvc,
		Catalog:  catalog,
		Edits:    edits,
		Orders:   ordersSvc,
		Cart:     carts,
		Nav:      nav,
	}, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
