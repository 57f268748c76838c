package vocabulary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexitrack/internal/entities"
)

func deckWith(name string, items ...entities.VocabularyItem) entities.Deck {
	cards := make([]entities.Card, len(items))
	for i, item := range items {
		cards[i] = entities.Card{
			ID:           name + "-" + item.Word,
			FrontText:    item.SourceText,
			IntervalDays: item.IntervalDays,
			EaseFactor:   item.EaseFactor,
			State:        item.State,
		}
	}
	return entities.Deck{
		Name:       name,
		ImportedAt: time.Now(),
		Cards:      cards,
		Vocabulary: items,
	}
}

func item(word string, interval int) entities.VocabularyItem {
	return entities.VocabularyItem{
		Word:         word,
		IntervalDays: interval,
		EaseFactor:   entities.DefaultEaseFactor,
		State:        entities.CardStateReview,
		SourceText:   word,
	}
}

func TestTierForInterval(t *testing.T) {
	// Lower bounds are inclusive.
	assert.Equal(t, entities.TierMastered, TierForInterval(90))
	assert.Equal(t, entities.TierFamiliar, TierForInterval(89))
	assert.Equal(t, entities.TierFamiliar, TierForInterval(21))
	assert.Equal(t, entities.TierLearning, TierForInterval(20))
	assert.Equal(t, entities.TierLearning, TierForInterval(7))
	assert.Equal(t, entities.TierNew, TierForInterval(6))
	assert.Equal(t, entities.TierNew, TierForInterval(0))
}

func TestDeduplicationKeepsStrongestSignal(t *testing.T) {
	store := NewStore()
	store.AddDeck(deckWith("First", item("hola", 5)))
	store.AddDeck(deckWith("Second", item("hola", 120)))

	require.Len(t, store.Vocabulary, 1)
	assert.Equal(t, 120, store.Vocabulary[0].IntervalDays)

	require.Len(t, store.MasteryLevels.Mastered, 1)
	assert.Equal(t, "hola", store.MasteryLevels.Mastered[0].Word)
	assert.Empty(t, store.MasteryLevels.New)
}

func TestDeduplicationTieKeepsFirstOccurrence(t *testing.T) {
	first := item("hola", 30)
	first.SourceText = "hola amigo"
	second := item("hola", 30)
	second.SourceText = "hola señora"

	store := NewStore()
	store.AddDeck(deckWith("First", first))
	store.AddDeck(deckWith("Second", second))

	require.Len(t, store.Vocabulary, 1)
	assert.Equal(t, "hola amigo", store.Vocabulary[0].SourceText,
		"on equal intervals the first deck's occurrence must win")
}

func TestBucketsPartitionVocabulary(t *testing.T) {
	store := NewStore()
	store.AddDeck(deckWith("Mixed",
		item("uno", 200),
		item("dos", 45),
		item("tres", 10),
		item("cuatro", 0),
	))

	levels := store.MasteryLevels
	assert.Len(t, levels.Mastered, 1)
	assert.Len(t, levels.Familiar, 1)
	assert.Len(t, levels.Learning, 1)
	assert.Len(t, levels.New, 1)

	total := len(levels.Mastered) + len(levels.Familiar) + len(levels.Learning) + len(levels.New)
	assert.Equal(t, len(store.Vocabulary), total, "buckets must partition the vocabulary exactly")
}

func TestRemoveDeckReclassifies(t *testing.T) {
	store := NewStore()
	store.AddDeck(deckWith("Keep", item("casa", 10)))
	store.AddDeck(deckWith("Drop", item("hola", 120), item("casa", 200)))

	assert.Equal(t, 3, store.TotalCards)
	require.Len(t, store.MasteryLevels.Mastered, 2)

	require.True(t, store.RemoveDeck("Drop"))

	// No stale entries from the removed deck survive anywhere.
	assert.Equal(t, 1, store.TotalCards)
	require.Len(t, store.Vocabulary, 1)
	assert.Equal(t, "casa", store.Vocabulary[0].Word)
	assert.Equal(t, 10, store.Vocabulary[0].IntervalDays)
	assert.Empty(t, store.MasteryLevels.Mastered)
	assert.Len(t, store.MasteryLevels.Learning, 1)
}

func TestTotalCardsIsRecomputed(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.TotalCards)

	store.AddDeck(deckWith("A", item("uno", 1), item("dos", 2)))
	store.AddDeck(deckWith("B", item("tres", 3)))
	assert.Equal(t, 3, store.TotalCards)

	store.RemoveDeck("A")
	assert.Equal(t, 1, store.TotalCards)

	store.Clear()
	assert.Equal(t, 0, store.TotalCards)
	assert.Empty(t, store.Decks)
}
