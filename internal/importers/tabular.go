// Package importers converts non-archive input formats into decks.
package importers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/parsers"
)

// manualTierIntervals assigns synthetic scheduling values to tabular
// imports, which carry no scheduling data of their own.
var manualTierIntervals = map[entities.MasteryTier]int{
	entities.TierMastered: 180,
	entities.TierFamiliar: 45,
	entities.TierLearning: 14,
	entities.TierNew:      0,
}

// TabularImporter parses the plain-text fallback format: one record per
// non-blank line, tab-delimited if any line contains a tab, otherwise
// comma-delimited. Column 0 is the primary term, column 1 the optional
// counterpart.
type TabularImporter struct{}

func NewTabularImporter() *TabularImporter {
	return &TabularImporter{}
}

// ImportDeck parses content into a deck shaped exactly like an archive
// import, with scheduling synthesized from the caller's manual tier.
func (i *TabularImporter) ImportDeck(deckName, content string, tier entities.MasteryTier) (*entities.Deck, error) {
	interval, ok := manualTierIntervals[tier]
	if !ok {
		return nil, fmt.Errorf("unknown mastery tier %q", tier)
	}

	state := entities.CardStateReview
	if tier == entities.TierNew {
		state = entities.CardStateNew
	}

	delimiter := ","
	if strings.Contains(content, "\t") {
		delimiter = "\t"
	}

	deck := &entities.Deck{
		Name:       deckName,
		ImportedAt: time.Now(),
		ManualTier: tier,
	}
	seen := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		columns := strings.Split(line, delimiter)
		term := strings.TrimSpace(parsers.ExtractText(columns[0]))
		if term == "" {
			continue
		}

		var counterpart string
		if len(columns) > 1 {
			counterpart = strings.TrimSpace(parsers.ExtractText(columns[1]))
		}

		card := entities.Card{
			ID:           "manual-" + uuid.NewString(),
			FrontText:    term,
			BackText:     counterpart,
			IntervalDays: interval,
			EaseFactor:   entities.DefaultEaseFactor,
			State:        state,
		}
		deck.Cards = append(deck.Cards, card)

		for _, word := range parsers.Tokenize(term) {
			if seen[word] {
				continue
			}
			seen[word] = true
			deck.Vocabulary = append(deck.Vocabulary, entities.VocabularyItem{
				Word:         word,
				IntervalDays: interval,
				EaseFactor:   entities.DefaultEaseFactor,
				State:        state,
				SourceText:   term,
			})
		}
	}

	return deck, nil
}
