package services

import "github.com/mrlokans/lexitrack/internal/anki"

// ExportService turns a term list into archive bytes. It reads nothing
// from the store; the caller supplies the terms it wants exported.
type ExportService struct {
	writer ArchiveWriter
}

func NewExportService() *ExportService {
	return &ExportService{writer: anki.NewWriter()}
}

// ExportDeck produces an .apkg archive containing one card per term
// pair. Export either fully succeeds or returns a fatal error with
// nothing written.
func (s *ExportService) ExportDeck(deckName string, terms []anki.TermPair) ([]byte, error) {
	return s.writer.WriteDeck(deckName, terms)
}
