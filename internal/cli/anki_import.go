package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/lexitrack/internal/config"
	"github.com/mrlokans/lexitrack/internal/services"
	"github.com/mrlokans/lexitrack/internal/storage"
)

// AnkiImportCommand imports an .apkg archive into the local store.
type AnkiImportCommand struct {
	ArchivePath  string
	DeckName     string
	DatabasePath string
	Verbose      bool
}

func NewAnkiImportCommand() *AnkiImportCommand {
	return &AnkiImportCommand{}
}

func (cmd *AnkiImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("anki-import", flag.ExitOnError)

	fs.StringVar(&cmd.ArchivePath, "file", "", "Path to the .apkg archive to import (required)")
	fs.StringVar(&cmd.DeckName, "deck", "", "Deck name to store the import under (defaults to the file name)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local store database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s anki-import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import a flashcard archive (.apkg) into the local vocabulary store.\n\n")
		fmt.Fprintf(os.Stderr, "The archive must contain an uncompressed collection database\n")
		fmt.Fprintf(os.Stderr, "(collection.anki2 or collection.anki21). Archives exported with\n")
		fmt.Fprintf(os.Stderr, "newer-format-only settings (collection.anki21b) are rejected;\n")
		fmt.Fprintf(os.Stderr, "re-export them with \"Support older Anki versions\" checked.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ArchivePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	if cmd.DeckName == "" {
		base := filepath.Base(cmd.ArchivePath)
		cmd.DeckName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return nil
}

func (cmd *AnkiImportCommand) Run() error {
	archive, err := os.ReadFile(cmd.ArchivePath)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	importService, cleanup, err := openImportService(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer cleanup()

	result := importService.ImportArchive(cmd.DeckName, archive)
	if !result.Success {
		return fmt.Errorf("import failed: %s", result.ErrorMessage)
	}

	fmt.Printf("Imported deck %q: %d cards, %d vocabulary items\n",
		result.DeckName, result.CardCount, result.VocabularyCount)
	if result.SkippedRows > 0 {
		fmt.Printf("Skipped %d undecodable rows\n", result.SkippedRows)
	}
	if cmd.Verbose {
		printStoreSummary(importService)
	}
	return nil
}

// openImportService wires the storage stack for a CLI invocation.
func openImportService(dbPath string) (*services.ImportService, func(), error) {
	provider, err := storage.NewSQLiteProvider(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store database: %w", err)
	}

	importService, err := services.NewImportService(storage.NewStoreRepository(provider))
	if err != nil {
		provider.Close()
		return nil, nil, fmt.Errorf("failed to load store: %w", err)
	}

	return importService, func() { provider.Close() }, nil
}

func printStoreSummary(importService *services.ImportService) {
	store := importService.Store()
	levels := store.MasteryLevels
	fmt.Printf("Store now holds %d decks, %d cards, %d unique words\n",
		len(store.Decks), store.TotalCards, len(store.Vocabulary))
	fmt.Printf("  mastered: %d, familiar: %d, learning: %d, new: %d\n",
		len(levels.Mastered), len(levels.Familiar), len(levels.Learning), len(levels.New))
}
