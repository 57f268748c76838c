package anki

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/parsers"
)

// Reader decodes an .apkg archive into a Deck.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ImportSummary reports what happened to the rows of one import.
type ImportSummary struct {
	RowsRead    int
	RowsSkipped int // rows that failed to decode; logged, never fatal
}

// ReadDeck opens the archive bytes, locates the embedded collection
// database and extracts every card together with the vocabulary tokens
// of its front text. Row-level decode failures are logged and skipped;
// container- and database-level failures abort with a typed error.
func (r *Reader) ReadDeck(deckName string, archive []byte) (*entities.Deck, ImportSummary, error) {
	var summary ImportSummary

	collection, err := extractCollection(archive)
	if err != nil {
		return nil, summary, err
	}

	// The sqlite driver wants a file; the member bytes are staged into a
	// temp file that lives only for the duration of the call.
	tmp, err := os.CreateTemp("", "lexitrack-*.anki2")
	if err != nil {
		return nil, summary, fmt.Errorf("%w: stage collection: %v", ErrCorruptDatabase, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(collection); err != nil {
		tmp.Close()
		return nil, summary, fmt.Errorf("%w: stage collection: %v", ErrCorruptDatabase, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, summary, fmt.Errorf("%w: stage collection: %v", ErrCorruptDatabase, err)
	}

	db, err := sql.Open("sqlite3", tmp.Name()+"?mode=ro")
	if err != nil {
		return nil, summary, fmt.Errorf("%w: %v", ErrCorruptDatabase, err)
	}
	defer db.Close()

	query, args, err := sq.
		Select(
			"cards.id", "cards.nid", "cards.ivl", "cards.factor",
			"cards.type", "cards.queue", "notes.flds", "notes.tags",
		).
		From("cards").
		Join("notes ON notes.id = cards.nid").
		OrderBy("cards.id").
		ToSql()
	if err != nil {
		return nil, summary, fmt.Errorf("%w: build query: %v", ErrCorruptDatabase, err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, summary, fmt.Errorf("%w: %v", ErrCorruptDatabase, err)
	}
	defer rows.Close()

	deck := &entities.Deck{
		Name:       deckName,
		ImportedAt: time.Now(),
	}
	seen := make(map[string]bool)

	for rows.Next() {
		summary.RowsRead++

		var (
			cardID, noteID   int64
			interval, factor sql.NullInt64
			cardType, queue  sql.NullInt64
			fields, tags     sql.NullString
		)
		if err := rows.Scan(&cardID, &noteID, &interval, &factor, &cardType, &queue, &fields, &tags); err != nil {
			summary.RowsSkipped++
			log.Printf("anki import: skipping undecodable card row: %v", err)
			continue
		}

		card, ok := buildCard(cardID, interval, factor, cardType, queue, fields, tags)
		if !ok {
			// Non-lexical note types (empty front after markup stripping)
			// are routine in real collections; dropping them is not an error.
			continue
		}
		deck.Cards = append(deck.Cards, card)

		// First occurrence of a token wins within one deck. The strongest
		// occurrence across decks is picked later, at classification time.
		for _, word := range parsers.Tokenize(card.FrontText) {
			if seen[word] {
				continue
			}
			seen[word] = true
			deck.Vocabulary = append(deck.Vocabulary, entities.VocabularyItem{
				Word:         word,
				IntervalDays: card.IntervalDays,
				EaseFactor:   card.EaseFactor,
				State:        card.State,
				SourceText:   card.FrontText,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, summary, fmt.Errorf("%w: iterate rows: %v", ErrCorruptDatabase, err)
	}

	return deck, summary, nil
}

// buildCard decodes one joined cards/notes row. The second return is
// false when the row carries no usable front text.
func buildCard(cardID int64, interval, factor, cardType, queue sql.NullInt64, fields, tags sql.NullString) (entities.Card, bool) {
	noteFields := strings.Split(fields.String, fieldSeparator)

	front := strings.TrimSpace(parsers.ExtractText(noteFields[0]))
	if front == "" {
		return entities.Card{}, false
	}

	var back string
	if len(noteFields) > 1 {
		back = strings.TrimSpace(parsers.ExtractText(noteFields[1]))
	}

	// Negative intervals encode seconds for cards still in the learning
	// steps; the tracking model only cares about whole days.
	days := int(interval.Int64)
	if days < 0 {
		days = 0
	}

	ease := int(factor.Int64)
	if ease == 0 {
		ease = entities.DefaultEaseFactor
	}

	return entities.Card{
		ID:           strconv.FormatInt(cardID, 10),
		FrontText:    front,
		BackText:     back,
		IntervalDays: days,
		EaseFactor:   ease,
		State:        cardStateFor(cardType.Int64, queue.Int64),
		Tags:         strings.TrimSpace(tags.String),
	}, true
}

// cardStateFor maps the scheduler's type/queue codes onto the three
// tracked states. The queue decides; suspended and buried cards
// (negative queues) fall back to their underlying type.
func cardStateFor(cardType, queue int64) entities.CardState {
	if queue < 0 {
		queue = cardType
	}
	switch queue {
	case cardQueueReview:
		return entities.CardStateReview
	case cardQueueLearning, cardQueueDayLearn:
		return entities.CardStateLearning
	default:
		return entities.CardStateNew
	}
}
