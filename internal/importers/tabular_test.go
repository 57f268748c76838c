package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexitrack/internal/entities"
)

func TestTabularImporter(t *testing.T) {
	importer := NewTabularImporter()

	t.Run("CommaDelimitedWithManualTier", func(t *testing.T) {
		deck, err := importer.ImportDeck("Greetings", "Hola,Hello\nAdiós,Goodbye", entities.TierFamiliar)
		require.NoError(t, err)

		require.Len(t, deck.Cards, 2)
		for _, card := range deck.Cards {
			assert.Equal(t, 45, card.IntervalDays)
			assert.Equal(t, entities.DefaultEaseFactor, card.EaseFactor)
			assert.Equal(t, entities.CardStateReview, card.State)
			assert.NotEmpty(t, card.ID)
		}
		assert.Equal(t, "Hola", deck.Cards[0].FrontText)
		assert.Equal(t, "Hello", deck.Cards[0].BackText)

		words := make([]string, 0, len(deck.Vocabulary))
		for _, item := range deck.Vocabulary {
			words = append(words, item.Word)
		}
		assert.Equal(t, []string{"hola", "adiós"}, words)
		assert.Equal(t, entities.TierFamiliar, deck.ManualTier)
	})

	t.Run("TabDelimitedWinsOverCommas", func(t *testing.T) {
		deck, err := importer.ImportDeck("Tabs", "mesa grande\tbig table, big desk", entities.TierLearning)
		require.NoError(t, err)

		require.Len(t, deck.Cards, 1)
		assert.Equal(t, "mesa grande", deck.Cards[0].FrontText)
		assert.Equal(t, "big table, big desk", deck.Cards[0].BackText)
		assert.Equal(t, 14, deck.Cards[0].IntervalDays)
	})

	t.Run("TierNewProducesNewCards", func(t *testing.T) {
		deck, err := importer.ImportDeck("Fresh", "palabra,word", entities.TierNew)
		require.NoError(t, err)

		require.Len(t, deck.Cards, 1)
		assert.Equal(t, 0, deck.Cards[0].IntervalDays)
		assert.Equal(t, entities.CardStateNew, deck.Cards[0].State)
	})

	t.Run("TierMasteredInterval", func(t *testing.T) {
		deck, err := importer.ImportDeck("Known", "biblioteca,library", entities.TierMastered)
		require.NoError(t, err)
		assert.Equal(t, 180, deck.Cards[0].IntervalDays)
	})

	t.Run("BlankAndEmptyTermLinesAreSkipped", func(t *testing.T) {
		deck, err := importer.ImportDeck("Sparse", "\n  \nhola,hello\n,orphan definition\n", entities.TierNew)
		require.NoError(t, err)
		require.Len(t, deck.Cards, 1)
		assert.Equal(t, "hola", deck.Cards[0].FrontText)
	})

	t.Run("MarkupIsStrippedFromColumns", func(t *testing.T) {
		deck, err := importer.ImportDeck("Markup", "<b>hola</b>,<i>hello</i>", entities.TierNew)
		require.NoError(t, err)
		require.Len(t, deck.Cards, 1)
		assert.Equal(t, "hola", deck.Cards[0].FrontText)
		assert.Equal(t, "hello", deck.Cards[0].BackText)
	})

	t.Run("DuplicateTokensKeepFirstOccurrence", func(t *testing.T) {
		deck, err := importer.ImportDeck("Dupes", "casa,house\ncasa,home", entities.TierNew)
		require.NoError(t, err)
		assert.Len(t, deck.Cards, 2)
		assert.Len(t, deck.Vocabulary, 1)
		assert.Equal(t, "casa", deck.Vocabulary[0].SourceText)
	})

	t.Run("UnknownTierIsAnError", func(t *testing.T) {
		_, err := importer.ImportDeck("Bad", "hola,hello", entities.MasteryTier("expert"))
		assert.Error(t, err)
	})
}
