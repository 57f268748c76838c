package anki

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mrlokans/lexitrack/internal/entities"
)

// TermPair is one row of an export: the primary term, its counterpart
// text, and an optional scheduling override.
type TermPair struct {
	Term       string
	Definition string
	Override   *SchedulingOverride
}

// SchedulingOverride pre-seeds the exported card's scheduling state so a
// learner's existing progress survives the round trip.
type SchedulingOverride struct {
	IntervalDays int
	EaseFactor   int
}

// Writer synthesizes a fresh .apkg archive from a term list.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// idAllocator hands out strictly increasing row ids, seeded from the
// export call's wall clock in milliseconds. Ids are unique within one
// exported database, which is all the consuming application requires.
type idAllocator struct {
	next int64
}

func newIDAllocator() *idAllocator {
	return &idAllocator{next: time.Now().UnixMilli()}
}

func (a *idAllocator) Next() int64 {
	id := a.next
	a.next++
	return id
}

// WriteDeck builds a complete collection database for the given terms
// and packages it into an archive the reference application can open.
// Export is all-or-nothing: any construction failure surfaces as
// ErrExportFailed and nothing is produced.
func (w *Writer) WriteDeck(deckName string, terms []TermPair) ([]byte, error) {
	if strings.TrimSpace(deckName) == "" {
		deckName = "Exported Deck"
	}

	dir, err := os.MkdirTemp("", "lexitrack-export-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, legacyCollectionName)
	if err := w.buildCollection(dbPath, deckName, terms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	collection, err := os.ReadFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	archive, err := packageArchive(collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return archive, nil
}

func (w *Writer) buildCollection(dbPath, deckName string, terms []TermPair) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("open collection database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(collectionDDL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// One transaction for the whole collection keeps the no-partial-output
	// contract even if a late insert fails.
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	if err := insertCollectionRow(tx, deckName, now); err != nil {
		return err
	}

	ids := newIDAllocator()
	for i, term := range terms {
		if err := insertTerm(tx, ids, term, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// insertCollectionRow writes the single col row: timestamps, schema
// version and the four JSON configuration blobs.
func insertCollectionRow(tx *sql.Tx, deckName string, now time.Time) error {
	mod := now.UnixMilli()
	modSecs := now.Unix()

	models, err := json.Marshal(map[string]noteModel{
		strconv.FormatInt(noteModelID, 10): newNoteModel(mod),
	})
	if err != nil {
		return fmt.Errorf("encode models: %w", err)
	}

	decks, err := json.Marshal(map[string]deckDef{
		strconv.FormatInt(exportDeckID, 10): newDeckDef(deckName, modSecs),
	})
	if err != nil {
		return fmt.Errorf("encode decks: %w", err)
	}

	dconf, err := json.Marshal(map[string]deckConfig{
		strconv.FormatInt(deckConfigID, 10): newDeckConfig(modSecs),
	})
	if err != nil {
		return fmt.Errorf("encode deck config: %w", err)
	}

	conf, err := json.Marshal(newCollectionConf())
	if err != nil {
		return fmt.Errorf("encode collection config: %w", err)
	}

	query, args, err := sq.
		Insert("col").
		Columns("id", "crt", "mod", "scm", "ver", "dty", "usn", "ls",
			"conf", "models", "decks", "dconf", "tags").
		Values(1, dayStart(now), mod, mod, collectionSchemaVersion, 0, 0, 0,
			string(conf), string(models), string(decks), string(dconf), "{}").
		ToSql()
	if err != nil {
		return fmt.Errorf("build col insert: %w", err)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("insert col row: %w", err)
	}
	return nil
}

// insertTerm writes one note row and its single card row. position is
// the term's ordinal in the export, used as the due position of new cards.
func insertTerm(tx *sql.Tx, ids *idAllocator, term TermPair, position int) error {
	now := time.Now().Unix()
	noteID := ids.Next()
	cardID := ids.Next()

	fields := term.Term + fieldSeparator + term.Definition

	query, args, err := sq.
		Insert("notes").
		Columns("id", "guid", "mid", "mod", "usn", "tags", "flds", "sfld",
			"csum", "flags", "data").
		Values(noteID, newNoteGUID(), noteModelID, now, -1, "", fields,
			term.Term, fieldChecksum(term.Term), 0, "").
		ToSql()
	if err != nil {
		return fmt.Errorf("build note insert: %w", err)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("insert note %q: %w", term.Term, err)
	}

	queue, due, ivl, factor := cardScheduling(term.Override, position)

	query, args, err = sq.
		Insert("cards").
		Columns("id", "nid", "did", "ord", "mod", "usn", "type", "queue",
			"due", "ivl", "factor", "reps", "lapses", "left", "odue",
			"odid", "flags", "data").
		Values(cardID, noteID, exportDeckID, 0, now, -1, queue, queue,
			due, ivl, factor, 0, 0, 0, 0, 0, 0, "").
		ToSql()
	if err != nil {
		return fmt.Errorf("build card insert: %w", err)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("insert card for %q: %w", term.Term, err)
	}
	return nil
}

// cardScheduling derives the card row's scheduling columns. An override
// with a positive interval marks the card as an established review card;
// everything else exports as new, due at its position in the list.
func cardScheduling(override *SchedulingOverride, position int) (queue, due, ivl, factor int) {
	factor = entities.DefaultEaseFactor
	if override != nil && override.EaseFactor > 0 {
		factor = override.EaseFactor
	}

	if override != nil && override.IntervalDays > 0 {
		return cardQueueReview, override.IntervalDays, override.IntervalDays, factor
	}
	return cardQueueNew, position + 1, 0, factor
}

// newNoteGUID returns a random globally-unique short identifier for a
// note row. The consuming application only requires uniqueness.
func newNoteGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// dayStart is the collection creation timestamp: the start of the
// current day in local time, in seconds.
func dayStart(now time.Time) int64 {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Unix()
}
