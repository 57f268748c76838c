package http

import (
	"github.com/mrlokans/lexitrack/internal/services"
	"github.com/mrlokans/lexitrack/internal/storage"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	ImportService *services.ImportService
	ExportService *services.ExportService

	// Storage provider, checked by the health endpoint.
	StorageProvider *storage.SQLiteProvider

	// Default deck name for exports that don't name one.
	ExportDeckName string

	// Application info
	Version string
}
