package config

const (
	// DefaultDatabasePath is the default path for the local store database
	DefaultDatabasePath = "./lexitrack.db"

	// DefaultExportDeckName is used when an export request names no deck
	DefaultExportDeckName = "Lexitrack Vocabulary"
)
