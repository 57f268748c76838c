package services

import (
	"github.com/mrlokans/lexitrack/internal/anki"
	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/vocabulary"
)

// ArchiveReader decodes .apkg archive bytes into a deck.
// Use this interface when you need to consume archives.
type ArchiveReader interface {
	ReadDeck(deckName string, archive []byte) (*entities.Deck, anki.ImportSummary, error)
}

// ArchiveWriter synthesizes .apkg archive bytes from a term list.
type ArchiveWriter interface {
	WriteDeck(deckName string, terms []anki.TermPair) ([]byte, error)
}

// TabularReader parses the plain-text fallback format into a deck.
type TabularReader interface {
	ImportDeck(deckName, content string, tier entities.MasteryTier) (*entities.Deck, error)
}

// StoreRepository persists the whole store snapshot.
type StoreRepository interface {
	LoadStore() (*vocabulary.Store, error)
	SaveStore(store *vocabulary.Store) error
}

// ImportResult is the structured outcome of one import operation. It is
// the only thing that crosses the service boundary; import errors never
// propagate past it.
type ImportResult struct {
	Success         bool   `json:"success"`
	DeckName        string `json:"deck_name,omitempty"`
	CardCount       int    `json:"card_count"`
	VocabularyCount int    `json:"vocabulary_count"`
	SkippedRows     int    `json:"skipped_rows,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}
