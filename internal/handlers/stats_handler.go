package handlers

import (
	"context"
	"errors"
	"net/http"

	"studytrack-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Stats    *service.StatsService
	Progress *service.ProgressService
}

func NewStatsHandler(stats *service.StatsService, progress *service.ProgressService) *StatsHandler {
	return &StatsHandler{Stats: stats, Progress: progress}
}

// GetStats returns the full stats view: progress record, per-category
// breakdown, level and recent performance.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	stats, err := h.Stats.GetStats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetProgress returns just the raw progress record.
func (h *StatsHandler) GetProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	progress, err := h.Progress.GetProgress(context.Background(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProgressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No progress yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
