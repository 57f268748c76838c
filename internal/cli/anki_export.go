package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/lexitrack/internal/anki"
	"github.com/mrlokans/lexitrack/internal/config"
	"github.com/mrlokans/lexitrack/internal/services"
)

// AnkiExportCommand synthesizes an .apkg archive from a word list file.
type AnkiExportCommand struct {
	TermsPath  string
	OutputPath string
	DeckName   string
}

func NewAnkiExportCommand() *AnkiExportCommand {
	return &AnkiExportCommand{}
}

func (cmd *AnkiExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("anki-export", flag.ExitOnError)

	fs.StringVar(&cmd.TermsPath, "terms", "", "Path to a tab- or comma-delimited term list (required)")
	fs.StringVar(&cmd.OutputPath, "out", "deck.apkg", "Output path for the generated archive")
	fs.StringVar(&cmd.DeckName, "deck", config.DefaultExportDeckName, "Deck name inside the archive")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s anki-export -terms <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Build a flashcard archive (.apkg) from a term list. The archive is\n")
		fmt.Fprintf(os.Stderr, "openable by the Anki desktop and mobile applications.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.TermsPath == "" {
		return fmt.Errorf("required flag -terms not provided")
	}

	return nil
}

func (cmd *AnkiExportCommand) Run() error {
	content, err := os.ReadFile(cmd.TermsPath)
	if err != nil {
		return fmt.Errorf("failed to read term list: %w", err)
	}

	terms := parseTermList(string(content))
	if len(terms) == 0 {
		return fmt.Errorf("no terms found in %s", cmd.TermsPath)
	}

	archive, err := services.NewExportService().ExportDeck(cmd.DeckName, terms)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(cmd.OutputPath, archive, 0644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	fmt.Printf("Wrote %q with %d cards to %s\n", cmd.DeckName, len(terms), cmd.OutputPath)
	return nil
}

// parseTermList reads the same tab-else-comma format the tabular
// importer accepts, without the scheduling synthesis.
func parseTermList(content string) []anki.TermPair {
	delimiter := ","
	if strings.Contains(content, "\t") {
		delimiter = "\t"
	}

	var terms []anki.TermPair
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		columns := strings.Split(line, delimiter)
		term := strings.TrimSpace(columns[0])
		if term == "" {
			continue
		}

		pair := anki.TermPair{Term: term}
		if len(columns) > 1 {
			pair.Definition = strings.TrimSpace(columns[1])
		}
		terms = append(terms, pair)
	}
	return terms
}
