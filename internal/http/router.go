package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.StorageProvider, cfg.Version)
	importController := NewImportController(cfg.ImportService)
	vocabularyController := NewVocabularyController(cfg.ImportService)
	decksController := NewDecksController(cfg.ImportService)
	exportController := NewExportController(cfg.ExportService, cfg.ExportDeckName)

	router.GET("/health", healthController.Status)

	api := router.Group("/api")
	{
		api.POST("/import/anki", importController.ImportArchive)
		api.POST("/import/text", importController.ImportTabular)

		api.GET("/vocabulary", vocabularyController.Get)

		api.GET("/decks", decksController.List)
		api.DELETE("/decks/:name", decksController.Delete)
		api.POST("/clear", decksController.Clear)

		api.POST("/export", exportController.Export)
	}

	return router
}
