package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexitrack/internal/services"
)

// DeckSummary is the list-view projection of a stored deck.
type DeckSummary struct {
	Name            string `json:"name"`
	ImportedAt      string `json:"imported_at"`
	ManualTier      string `json:"manual_tier,omitempty"`
	CardCount       int    `json:"card_count"`
	VocabularyCount int    `json:"vocabulary_count"`
}

type DecksController struct {
	importService *services.ImportService
}

func NewDecksController(importService *services.ImportService) *DecksController {
	return &DecksController{importService: importService}
}

func (ctrl *DecksController) List(c *gin.Context) {
	store := ctrl.importService.Store()

	summaries := make([]DeckSummary, 0, len(store.Decks))
	for _, deck := range store.Decks {
		summaries = append(summaries, DeckSummary{
			Name:            deck.Name,
			ImportedAt:      deck.ImportedAt.Format("2006-01-02T15:04:05Z07:00"),
			ManualTier:      string(deck.ManualTier),
			CardCount:       len(deck.Cards),
			VocabularyCount: len(deck.Vocabulary),
		})
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"decks":       summaries,
		"total_cards": store.TotalCards,
	})
}

func (ctrl *DecksController) Delete(c *gin.Context) {
	name := c.Param("name")

	removed, err := ctrl.importService.RemoveDeck(name)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "deck not found: " + name})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"deleted": name})
}

func (ctrl *DecksController) Clear(c *gin.Context) {
	if err := ctrl.importService.ClearAll(); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"cleared": true})
}
