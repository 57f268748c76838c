package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/services"
)

// maxImportSize caps uploaded archive/text bodies at 256 MiB.
const maxImportSize = 256 << 20

// ImportController handles both import paths: the .apkg archive and the
// tabular plain-text fallback.
type ImportController struct {
	importService *services.ImportService
}

func NewImportController(importService *services.ImportService) *ImportController {
	return &ImportController{importService: importService}
}

// ImportArchive accepts an .apkg upload, either as a multipart "file"
// field or as the raw request body, and imports it as a deck named by
// the "deck" parameter (falling back to the uploaded file name).
func (ctrl *ImportController) ImportArchive(c *gin.Context) {
	deckName := c.Query("deck")

	data, fileName, err := readUpload(c)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, services.ImportResult{
			Success:      false,
			ErrorMessage: "failed to read upload: " + err.Error(),
		})
		return
	}

	if deckName == "" && fileName != "" {
		deckName = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	if deckName == "" {
		deckName = "Imported Deck"
	}

	result := ctrl.importService.ImportArchive(deckName, data)
	c.IndentedJSON(statusFor(result), result)
}

// ImportTabular accepts plain text (tab- or comma-delimited) and a
// required "tier" parameter selecting the manual mastery tier.
func (ctrl *ImportController) ImportTabular(c *gin.Context) {
	tier, ok := entities.ParseMasteryTier(c.Query("tier"))
	if !ok {
		c.IndentedJSON(http.StatusBadRequest, services.ImportResult{
			Success:      false,
			ErrorMessage: "tier must be one of: mastered, familiar, learning, new",
		})
		return
	}

	deckName := c.Query("deck")

	data, fileName, err := readUpload(c)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, services.ImportResult{
			Success:      false,
			ErrorMessage: "failed to read upload: " + err.Error(),
		})
		return
	}

	if deckName == "" && fileName != "" {
		deckName = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	if deckName == "" {
		deckName = "Manual Import"
	}

	result := ctrl.importService.ImportTabular(deckName, string(data), tier)
	c.IndentedJSON(statusFor(result), result)
}

// readUpload returns the uploaded bytes and, when a multipart file was
// used, its original file name.
func readUpload(c *gin.Context) ([]byte, string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxImportSize))
		if err != nil {
			return nil, "", err
		}
		return data, file.Filename, nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		return nil, "", err
	}
	return data, "", nil
}

func statusFor(result services.ImportResult) int {
	if result.Success {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}
