package anki

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Collection schema version written on export. 11 is the plain (anki2)
// schema every consumer understands.
const collectionSchemaVersion = 11

// Stable literal ids so repeated exports of the same logical deck stay
// referentially consistent with each other.
const (
	noteModelID  int64 = 1607392319495
	exportDeckID int64 = 1607392319496
	deckConfigID int64 = 1
)

// fieldSeparator joins note fields inside notes.flds.
const fieldSeparator = "\x1f"

// collectionDDL is the reference schema of the embedded database:
// col (single-row collection config), notes, cards, plus the revlog and
// graves tables which are always empty on export.
const collectionDDL = `
CREATE TABLE col (
    id    integer PRIMARY KEY,
    crt   integer NOT NULL,
    mod   integer NOT NULL,
    scm   integer NOT NULL,
    ver   integer NOT NULL,
    dty   integer NOT NULL,
    usn   integer NOT NULL,
    ls    integer NOT NULL,
    conf  text NOT NULL,
    models text NOT NULL,
    decks text NOT NULL,
    dconf text NOT NULL,
    tags  text NOT NULL
);
CREATE TABLE notes (
    id    integer PRIMARY KEY,
    guid  text NOT NULL,
    mid   integer NOT NULL,
    mod   integer NOT NULL,
    usn   integer NOT NULL,
    tags  text NOT NULL,
    flds  text NOT NULL,
    sfld  integer NOT NULL,
    csum  integer NOT NULL,
    flags integer NOT NULL,
    data  text NOT NULL
);
CREATE TABLE cards (
    id     integer PRIMARY KEY,
    nid    integer NOT NULL,
    did    integer NOT NULL,
    ord    integer NOT NULL,
    mod    integer NOT NULL,
    usn    integer NOT NULL,
    type   integer NOT NULL,
    queue  integer NOT NULL,
    due    integer NOT NULL,
    ivl    integer NOT NULL,
    factor integer NOT NULL,
    reps   integer NOT NULL,
    lapses integer NOT NULL,
    left   integer NOT NULL,
    odue   integer NOT NULL,
    odid   integer NOT NULL,
    flags  integer NOT NULL,
    data   text NOT NULL
);
CREATE TABLE revlog (
    id      integer PRIMARY KEY,
    cid     integer NOT NULL,
    usn     integer NOT NULL,
    ease    integer NOT NULL,
    ivl     integer NOT NULL,
    lastIvl integer NOT NULL,
    factor  integer NOT NULL,
    time    integer NOT NULL,
    type    integer NOT NULL
);
CREATE TABLE graves (
    usn  integer NOT NULL,
    oid  integer NOT NULL,
    type integer NOT NULL
);
CREATE INDEX ix_notes_usn ON notes (usn);
CREATE INDEX ix_cards_usn ON cards (usn);
CREATE INDEX ix_revlog_usn ON revlog (usn);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
CREATE INDEX ix_revlog_cid ON revlog (cid);
CREATE INDEX ix_notes_csum ON notes (csum);
`

// Card queue/type codes used by the scheduler.
const (
	cardQueueNew      = 0
	cardQueueLearning = 1
	cardQueueReview   = 2
	cardQueueDayLearn = 3
)

// noteModel is the note-type definition serialized into col.models,
// keyed by its id. Key names follow the consuming application exactly.
type noteModel struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Type      int              `json:"type"`
	Mod       int64            `json:"mod"`
	USN       int              `json:"usn"`
	SortField int              `json:"sortf"`
	DeckID    int64            `json:"did"`
	Templates []cardTemplate   `json:"tmpls"`
	Fields    []noteModelField `json:"flds"`
	CSS       string           `json:"css"`
	LatexPre  string           `json:"latexPre"`
	LatexPost string           `json:"latexPost"`
	Req       [][]interface{}  `json:"req"`
	Tags      []string         `json:"tags"`
	Vers      []interface{}    `json:"vers"`
}

type cardTemplate struct {
	Name        string `json:"name"`
	Ordinal     int    `json:"ord"`
	Question    string `json:"qfmt"`
	Answer      string `json:"afmt"`
	BrowserQFmt string `json:"bqfmt"`
	BrowserAFmt string `json:"bafmt"`
	DeckID      *int64 `json:"did"`
}

type noteModelField struct {
	Name    string   `json:"name"`
	Ordinal int      `json:"ord"`
	Sticky  bool     `json:"sticky"`
	RTL     bool     `json:"rtl"`
	Font    string   `json:"font"`
	Size    int      `json:"size"`
	Media   []string `json:"media"`
}

// deckDef is one deck definition inside col.decks.
type deckDef struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Mod              int64  `json:"mod"`
	USN              int    `json:"usn"`
	LrnToday         [2]int `json:"lrnToday"`
	RevToday         [2]int `json:"revToday"`
	NewToday         [2]int `json:"newToday"`
	TimeToday        [2]int `json:"timeToday"`
	Collapsed        bool   `json:"collapsed"`
	BrowserCollapsed bool   `json:"browserCollapsed"`
	Description      string `json:"desc"`
	Dyn              int    `json:"dyn"`
	ConfID           int64  `json:"conf"`
	ExtendNew        int    `json:"extendNew"`
	ExtendRev        int    `json:"extendRev"`
}

// deckConfig is one scheduling-options group inside col.dconf.
type deckConfig struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Mod      int64         `json:"mod"`
	USN      int           `json:"usn"`
	MaxTaken int           `json:"maxTaken"`
	Autoplay bool          `json:"autoplay"`
	Timer    int           `json:"timer"`
	Replayq  bool          `json:"replayq"`
	New      newCardConfig `json:"new"`
	Review   reviewConfig  `json:"rev"`
	Lapse    lapseConfig   `json:"lapse"`
}

type newCardConfig struct {
	Bury          bool      `json:"bury"`
	Delays        []float64 `json:"delays"`
	InitialFactor int       `json:"initialFactor"`
	Ints          []int     `json:"ints"`
	Order         int       `json:"order"`
	PerDay        int       `json:"perDay"`
	Separate      bool      `json:"separate"`
}

type reviewConfig struct {
	Bury           bool    `json:"bury"`
	Ease4          float64 `json:"ease4"`
	Fuzz           float64 `json:"fuzz"`
	IntervalFactor float64 `json:"ivlFct"`
	MaxInterval    int     `json:"maxIvl"`
	PerDay         int     `json:"perDay"`
	HardFactor     float64 `json:"hardFactor"`
	MinSpace       int     `json:"minSpace"`
}

type lapseConfig struct {
	Delays      []float64 `json:"delays"`
	LeechAction int       `json:"leechAction"`
	LeechFails  int       `json:"leechFails"`
	MinInterval int       `json:"minInt"`
	Multiplier  float64   `json:"mult"`
}

// collectionConf is the global configuration blob in col.conf.
type collectionConf struct {
	NextPos       int     `json:"nextPos"`
	EstTimes      bool    `json:"estTimes"`
	ActiveDecks   []int64 `json:"activeDecks"`
	SortType      string  `json:"sortType"`
	TimeLimit     int     `json:"timeLim"`
	SortBackwards bool    `json:"sortBackwards"`
	AddToCurrent  bool    `json:"addToCur"`
	CurrentDeck   int64   `json:"curDeck"`
	NewSpread     int     `json:"newSpread"`
	DueCounts     bool    `json:"dueCounts"`
	CurrentModel  string  `json:"curModel"`
	CollapseTime  int     `json:"collapseTime"`
	DayLearnFirst bool    `json:"dayLearnFirst"`
}

const defaultCardCSS = ".card {\n font-family: arial;\n font-size: 20px;\n text-align: center;\n color: black;\n background-color: white;\n}\n"

const (
	defaultLatexPre  = "\\documentclass[12pt]{article}\n\\special{papersize=3in,5in}\n\\usepackage[utf8]{inputenc}\n\\usepackage{amssymb,amsmath}\n\\pagestyle{empty}\n\\setlength{\\parindent}{0in}\n\\begin{document}\n"
	defaultLatexPost = "\\end{document}"
)

// newNoteModel builds the single two-field model used for exported
// decks: field 0 on the front, both fields on the back.
func newNoteModel(mod int64) noteModel {
	return noteModel{
		ID:        noteModelID,
		Name:      "Vocabulary",
		Mod:       mod,
		DeckID:    exportDeckID,
		Templates: []cardTemplate{{
			Name:     "Card 1",
			Question: "{{Front}}",
			Answer:   "{{FrontSide}}\n\n<hr id=answer>\n\n{{Back}}",
		}},
		Fields: []noteModelField{
			{Name: "Front", Ordinal: 0, Font: "Arial", Size: 20, Media: []string{}},
			{Name: "Back", Ordinal: 1, Font: "Arial", Size: 20, Media: []string{}},
		},
		CSS:       defaultCardCSS,
		LatexPre:  defaultLatexPre,
		LatexPost: defaultLatexPost,
		Req:       [][]interface{}{{0, "any", []interface{}{0}}},
		Tags:      []string{},
		Vers:      []interface{}{},
	}
}

func newDeckDef(name string, mod int64) deckDef {
	return deckDef{
		ID:     exportDeckID,
		Name:   name,
		Mod:    mod,
		ConfID: deckConfigID,
	}
}

func newDeckConfig(mod int64) deckConfig {
	return deckConfig{
		ID:       deckConfigID,
		Name:     "Default",
		Mod:      mod,
		MaxTaken: 60,
		Autoplay: true,
		Replayq:  true,
		New: newCardConfig{
			Delays:        []float64{1, 10},
			InitialFactor: 2500,
			Ints:          []int{1, 4, 7},
			PerDay:        20,
		},
		Review: reviewConfig{
			Ease4:          1.3,
			Fuzz:           0.05,
			IntervalFactor: 1,
			MaxInterval:    36500,
			PerDay:         100,
			HardFactor:     1.2,
		},
		Lapse: lapseConfig{
			Delays:      []float64{10},
			LeechFails:  8,
			MinInterval: 1,
			Multiplier:  0,
		},
	}
}

func newCollectionConf() collectionConf {
	return collectionConf{
		NextPos:      1,
		EstTimes:     true,
		ActiveDecks:  []int64{exportDeckID},
		SortType:     "noteFld",
		AddToCurrent: true,
		CurrentDeck:  exportDeckID,
		DueCounts:    true,
		CurrentModel: strconv.FormatInt(noteModelID, 10),
		CollapseTime: 1200,
	}
}

// fieldChecksum computes notes.csum: the first 8 hex digits of the
// SHA-1 of the sort field, interpreted as an integer.
func fieldChecksum(sortField string) int64 {
	sum := sha1.Sum([]byte(sortField))
	v, err := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	if err != nil {
		// Unreachable: 8 hex digits always parse.
		panic(fmt.Sprintf("field checksum: %v", err))
	}
	return v
}
