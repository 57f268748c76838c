package services

import (
	"log"

	"github.com/mrlokans/lexitrack/internal/anki"
	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/importers"
	"github.com/mrlokans/lexitrack/internal/vocabulary"
)

// ImportService owns the current store snapshot and the business logic
// of getting decks into and out of it. Mutations go through a commit
// boundary: a candidate snapshot is built, persisted, and only then
// swapped in, so a failed import leaves the store exactly as it was.
//
// Calls are synchronous and single-flow by contract; the service holds
// no lock and callers must not overlap mutating operations.
type ImportService struct {
	reader  ArchiveReader
	tabular TabularReader
	repo    StoreRepository

	store *vocabulary.Store
}

// NewImportService loads the persisted store (or the empty default) and
// wires the default codec implementations.
func NewImportService(repo StoreRepository) (*ImportService, error) {
	store, err := repo.LoadStore()
	if err != nil {
		return nil, err
	}
	return &ImportService{
		reader:  anki.NewReader(),
		tabular: importers.NewTabularImporter(),
		repo:    repo,
		store:   store,
	}, nil
}

// Store returns the current snapshot for read-only consumers.
func (s *ImportService) Store() *vocabulary.Store {
	return s.store
}

// ImportArchive imports an .apkg archive as a new deck.
func (s *ImportService) ImportArchive(deckName string, archive []byte) ImportResult {
	deck, summary, err := s.reader.ReadDeck(deckName, archive)
	if err != nil {
		return ImportResult{Success: false, ErrorMessage: err.Error()}
	}

	if err := s.commitDeck(*deck); err != nil {
		return ImportResult{Success: false, ErrorMessage: err.Error()}
	}

	if summary.RowsSkipped > 0 {
		log.Printf("Imported deck %q with %d undecodable rows skipped", deck.Name, summary.RowsSkipped)
	}

	return ImportResult{
		Success:         true,
		DeckName:        deck.Name,
		CardCount:       len(deck.Cards),
		VocabularyCount: len(deck.Vocabulary),
		SkippedRows:     summary.RowsSkipped,
	}
}

// ImportTabular imports plain delimiter-separated text as a new deck,
// with scheduling synthesized from the manual tier.
func (s *ImportService) ImportTabular(deckName, content string, tier entities.MasteryTier) ImportResult {
	deck, err := s.tabular.ImportDeck(deckName, content, tier)
	if err != nil {
		return ImportResult{Success: false, ErrorMessage: err.Error()}
	}

	if err := s.commitDeck(*deck); err != nil {
		return ImportResult{Success: false, ErrorMessage: err.Error()}
	}

	return ImportResult{
		Success:         true,
		DeckName:        deck.Name,
		CardCount:       len(deck.Cards),
		VocabularyCount: len(deck.Vocabulary),
	}
}

// RemoveDeck drops a deck by name, reclassifying the remaining
// vocabulary. The first return reports whether the deck existed.
func (s *ImportService) RemoveDeck(name string) (bool, error) {
	next := s.store.Clone()
	if !next.RemoveDeck(name) {
		return false, nil
	}
	if err := s.commit(next); err != nil {
		return true, err
	}
	return true, nil
}

// ClearAll resets the store to its empty default.
func (s *ImportService) ClearAll() error {
	return s.commit(vocabulary.NewStore())
}

func (s *ImportService) commitDeck(deck entities.Deck) error {
	next := s.store.Clone()
	next.AddDeck(deck)
	return s.commit(next)
}

// commit persists the candidate snapshot and swaps it in. On persistence
// failure the current snapshot stays untouched.
func (s *ImportService) commit(next *vocabulary.Store) error {
	if err := s.repo.SaveStore(next); err != nil {
		return err
	}
	s.store = next
	return nil
}
