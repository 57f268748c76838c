package entities

import "time"

// CardState mirrors the scheduling state a card carries in the source
// collection: never studied, in the learning steps, or in regular review.
type CardState string

const (
	CardStateNew      CardState = "new"
	CardStateLearning CardState = "learning"
	CardStateReview   CardState = "review"
)

// MasteryTier buckets a vocabulary item by the strength of its
// spaced-repetition signal. The four tiers partition the deduplicated
// vocabulary set; membership is determined by interval alone.
type MasteryTier string

const (
	TierMastered MasteryTier = "mastered"
	TierFamiliar MasteryTier = "familiar"
	TierLearning MasteryTier = "learning"
	TierNew      MasteryTier = "new"
)

// ParseMasteryTier validates a user-supplied tier name.
func ParseMasteryTier(s string) (MasteryTier, bool) {
	switch MasteryTier(s) {
	case TierMastered, TierFamiliar, TierLearning, TierNew:
		return MasteryTier(s), true
	}
	return "", false
}

// Card is one schedulable flashcard pulled out of an import source.
// ID is the collection's native numeric card id rendered as a string,
// or a synthetic token for tabular imports.
type Card struct {
	ID           string    `json:"id"`
	FrontText    string    `json:"front_text"`
	BackText     string    `json:"back_text"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   int       `json:"ease_factor"`
	State        CardState `json:"state"`
	Tags         string    `json:"tags"`
}

// VocabularyItem is a single lowercase token extracted from a card's
// front text, carrying the scheduling signal of the card it came from.
type VocabularyItem struct {
	Word         string    `json:"word"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   int       `json:"ease_factor"`
	State        CardState `json:"state"`
	SourceText   string    `json:"source_text"`
}

// Deck is the result of one import operation. Decks are immutable once
// stored; the only mutation is removal of the whole deck.
type Deck struct {
	Name       string           `json:"name"`
	ImportedAt time.Time        `json:"imported_at"`
	ManualTier MasteryTier      `json:"manual_tier,omitempty"`
	Cards      []Card           `json:"cards"`
	Vocabulary []VocabularyItem `json:"vocabulary"`
}

// MasteryLevels holds the classified view of the deduplicated vocabulary.
type MasteryLevels struct {
	Mastered []VocabularyItem `json:"mastered"`
	Familiar []VocabularyItem `json:"familiar"`
	Learning []VocabularyItem `json:"learning"`
	New      []VocabularyItem `json:"new"`
}

// DefaultEaseFactor is the scheduler default of 250%, stored the way the
// source collection stores it (permille-like integer).
const DefaultEaseFactor = 2500
