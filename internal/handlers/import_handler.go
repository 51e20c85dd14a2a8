package handlers

import (
	"context"
	"net/http"

	"studytrack-service/internal/importer"

	"github.com/gin-gonic/gin"
)

// ImportQuestions seeds the catalog from a spreadsheet already on the
// server. Admin-only; the file path is server-side, not an upload.
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	var req struct {
		FilePath  string `json:"file_path" binding:"required"`
		SheetName string `json:"sheet_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config := importer.DefaultConfig(req.FilePath)
	if req.SheetName != "" {
		config.SheetName = req.SheetName
	}

	result, err := importer.ImportQuestions(context.Background(), h.Service, config)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
