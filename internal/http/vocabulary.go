package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexitrack/internal/services"
)

type VocabularyController struct {
	importService *services.ImportService
}

func NewVocabularyController(importService *services.ImportService) *VocabularyController {
	return &VocabularyController{importService: importService}
}

// Get returns the deduplicated vocabulary classified into mastery
// buckets, plus per-bucket counts.
func (ctrl *VocabularyController) Get(c *gin.Context) {
	store := ctrl.importService.Store()
	levels := store.MasteryLevels

	c.IndentedJSON(http.StatusOK, gin.H{
		"mastery_levels": levels,
		"counts": gin.H{
			"mastered": len(levels.Mastered),
			"familiar": len(levels.Familiar),
			"learning": len(levels.Learning),
			"new":      len(levels.New),
			"total":    len(store.Vocabulary),
		},
		"total_cards":    store.TotalCards,
		"last_import_at": store.LastImportAt,
	})
}
