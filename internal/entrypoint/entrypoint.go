package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexitrack/internal/config"
	http_controllers "github.com/mrlokans/lexitrack/internal/http"
	"github.com/mrlokans/lexitrack/internal/services"
	"github.com/mrlokans/lexitrack/internal/storage"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Lexitrack v%s", version)

	provider, err := storage.NewSQLiteProvider(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	repo := storage.NewStoreRepository(provider)

	importService, err := services.NewImportService(repo)
	if err != nil {
		log.Fatalf("Failed to load vocabulary store: %v", err)
	}
	log.Printf("Loaded store: %d decks, %d cards, %d vocabulary items",
		len(importService.Store().Decks),
		importService.Store().TotalCards,
		len(importService.Store().Vocabulary))

	exportService := services.NewExportService()

	routerCfg := http_controllers.RouterConfig{
		ImportService:   importService,
		ExportService:   exportService,
		StorageProvider: provider,
		ExportDeckName:  cfg.Export.DeckName,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		if err := provider.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	})
}
