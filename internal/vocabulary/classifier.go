package vocabulary

import "github.com/mrlokans/lexitrack/internal/entities"

// Inclusive lower bounds of the mastery tiers, in days.
const (
	masteredThreshold = 90
	familiarThreshold = 21
	learningThreshold = 7
)

// TierForInterval maps a surviving interval onto its mastery tier.
func TierForInterval(days int) entities.MasteryTier {
	switch {
	case days >= masteredThreshold:
		return entities.TierMastered
	case days >= familiarThreshold:
		return entities.TierFamiliar
	case days >= learningThreshold:
		return entities.TierLearning
	default:
		return entities.TierNew
	}
}

// reclassify rebuilds the deduplicated vocabulary, the mastery buckets
// and the card total from scratch. Traversal order is fixed (deck
// insertion order, then in-deck order) so dedup ties are deterministic:
// an entry is only replaced on a strictly greater interval, which makes
// the first occurrence win on equal intervals.
//
// This is a full O(total mentions) recomputation on every mutation.
// Vocabulary volumes are bounded in the thousands, and correctness under
// arbitrary add/remove ordering matters more than incremental updates.
func (s *Store) reclassify() {
	index := make(map[string]int)
	dedup := make([]entities.VocabularyItem, 0)

	totalCards := 0
	for _, deck := range s.Decks {
		totalCards += len(deck.Cards)
		for _, item := range deck.Vocabulary {
			pos, ok := index[item.Word]
			if !ok {
				index[item.Word] = len(dedup)
				dedup = append(dedup, item)
				continue
			}
			if item.IntervalDays > dedup[pos].IntervalDays {
				dedup[pos] = item
			}
		}
	}

	levels := entities.MasteryLevels{
		Mastered: make([]entities.VocabularyItem, 0),
		Familiar: make([]entities.VocabularyItem, 0),
		Learning: make([]entities.VocabularyItem, 0),
		New:      make([]entities.VocabularyItem, 0),
	}
	for _, item := range dedup {
		switch TierForInterval(item.IntervalDays) {
		case entities.TierMastered:
			levels.Mastered = append(levels.Mastered, item)
		case entities.TierFamiliar:
			levels.Familiar = append(levels.Familiar, item)
		case entities.TierLearning:
			levels.Learning = append(levels.Learning, item)
		default:
			levels.New = append(levels.New, item)
		}
	}

	s.Vocabulary = dedup
	s.MasteryLevels = levels
	s.TotalCards = totalCards
}
