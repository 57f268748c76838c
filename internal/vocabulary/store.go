// Package vocabulary holds the aggregate tracking store: every imported
// deck plus the deduplicated, mastery-classified view derived from them.
package vocabulary

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrlokans/lexitrack/internal/entities"
)

// Store is the process-wide aggregate. It is loaded once at startup,
// mutated by import/remove/clear, and persisted whole after every
// mutation. Mutating methods reclassify the full vocabulary view; the
// caller owns the single-flow contract (no concurrent mutation).
type Store struct {
	Decks         []entities.Deck           `json:"decks"`
	Vocabulary    []entities.VocabularyItem `json:"vocabulary"`
	MasteryLevels entities.MasteryLevels    `json:"mastery_levels"`
	LastImportAt  time.Time                 `json:"last_import_at"`
	TotalCards    int                       `json:"total_cards"`
}

// NewStore returns the empty default store.
func NewStore() *Store {
	s := &Store{}
	s.reclassify()
	return s
}

// AddDeck stores a deck, replacing any previous deck of the same name,
// and recomputes the classified view.
func (s *Store) AddDeck(deck entities.Deck) {
	for i := range s.Decks {
		if s.Decks[i].Name == deck.Name {
			s.Decks[i] = deck
			s.LastImportAt = deck.ImportedAt
			s.reclassify()
			return
		}
	}
	s.Decks = append(s.Decks, deck)
	s.LastImportAt = deck.ImportedAt
	s.reclassify()
}

// RemoveDeck drops a deck by name and recomputes the classified view so
// no stale entries from the removed deck survive in any bucket.
func (s *Store) RemoveDeck(name string) bool {
	for i := range s.Decks {
		if s.Decks[i].Name == name {
			s.Decks = append(s.Decks[:i], s.Decks[i+1:]...)
			s.reclassify()
			return true
		}
	}
	return false
}

// Clear resets the store to its empty default.
func (s *Store) Clear() {
	*s = *NewStore()
}

// Clone returns a deep-enough copy for the commit boundary: deck and
// vocabulary slices are copied, their elements are immutable by contract.
func (s *Store) Clone() *Store {
	c := &Store{
		Decks:        append([]entities.Deck(nil), s.Decks...),
		LastImportAt: s.LastImportAt,
	}
	c.reclassify()
	return c
}

// Encode serializes the store for the persistence collaborator.
func (s *Store) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return data, nil
}

// Decode restores a store from its serialized form and recomputes the
// derived view, so a snapshot written by an older build stays coherent.
func Decode(data []byte) (*Store, error) {
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	s.reclassify()
	return &s, nil
}
