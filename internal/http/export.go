package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexitrack/internal/anki"
	"github.com/mrlokans/lexitrack/internal/services"
)

// ExportRequest is the JSON body of an export call.
type ExportRequest struct {
	DeckName string       `json:"deck_name"`
	Terms    []ExportTerm `json:"terms" binding:"required"`
}

type ExportTerm struct {
	Term         string `json:"term" binding:"required"`
	Definition   string `json:"definition"`
	IntervalDays int    `json:"interval_days,omitempty"`
	EaseFactor   int    `json:"ease_factor,omitempty"`
}

type ExportController struct {
	exportService   *services.ExportService
	defaultDeckName string
}

func NewExportController(exportService *services.ExportService, defaultDeckName string) *ExportController {
	return &ExportController{
		exportService:   exportService,
		defaultDeckName: defaultDeckName,
	}
}

// Export synthesizes an archive from the posted term list and returns
// it as an .apkg attachment.
func (ctrl *ExportController) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid export request: " + err.Error()})
		return
	}

	deckName := req.DeckName
	if deckName == "" {
		deckName = ctrl.defaultDeckName
	}

	terms := make([]anki.TermPair, 0, len(req.Terms))
	for _, t := range req.Terms {
		pair := anki.TermPair{Term: t.Term, Definition: t.Definition}
		if t.IntervalDays > 0 || t.EaseFactor > 0 {
			pair.Override = &anki.SchedulingOverride{
				IntervalDays: t.IntervalDays,
				EaseFactor:   t.EaseFactor,
			}
		}
		terms = append(terms, pair)
	}

	archive, err := ctrl.exportService.ExportDeck(deckName, terms)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+deckName+`.apkg"`)
	c.Data(http.StatusOK, "application/zip", archive)
}
