package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/lexitrack/internal/config"
	"github.com/mrlokans/lexitrack/internal/entities"
)

// TextImportCommand imports a delimiter-separated word list with a
// manually chosen mastery tier.
type TextImportCommand struct {
	FilePath     string
	DeckName     string
	Tier         entities.MasteryTier
	DatabasePath string
	Verbose      bool
}

func NewTextImportCommand() *TextImportCommand {
	return &TextImportCommand{}
}

func (cmd *TextImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("text-import", flag.ExitOnError)

	var tier string
	fs.StringVar(&cmd.FilePath, "file", "", "Path to the .txt/.tsv/.csv word list (required)")
	fs.StringVar(&tier, "tier", "new", "Mastery tier for the imported words: mastered, familiar, learning or new")
	fs.StringVar(&cmd.DeckName, "deck", "", "Deck name to store the import under (defaults to the file name)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local store database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s text-import -file <path> -tier <tier> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import a plain word list into the local vocabulary store.\n\n")
		fmt.Fprintf(os.Stderr, "One record per line, tab-delimited if the file contains tabs,\n")
		fmt.Fprintf(os.Stderr, "otherwise comma-delimited. Column 1 is the word, column 2 an\n")
		fmt.Fprintf(os.Stderr, "optional translation. The list carries no scheduling data, so the\n")
		fmt.Fprintf(os.Stderr, "-tier flag decides how well the words count as known.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	parsed, ok := entities.ParseMasteryTier(tier)
	if !ok {
		return fmt.Errorf("invalid tier %q: must be mastered, familiar, learning or new", tier)
	}
	cmd.Tier = parsed

	if cmd.DeckName == "" {
		base := filepath.Base(cmd.FilePath)
		cmd.DeckName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return nil
}

func (cmd *TextImportCommand) Run() error {
	content, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}

	importService, cleanup, err := openImportService(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer cleanup()

	result := importService.ImportTabular(cmd.DeckName, string(content), cmd.Tier)
	if !result.Success {
		return fmt.Errorf("import failed: %s", result.ErrorMessage)
	}

	fmt.Printf("Imported deck %q (%s): %d cards, %d vocabulary items\n",
		result.DeckName, cmd.Tier, result.CardCount, result.VocabularyCount)
	if cmd.Verbose {
		printStoreSummary(importService)
	}
	return nil
}
