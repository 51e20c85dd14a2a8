package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"studytrack-service/internal/scoring"
	"studytrack-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Questions *service.QuestionService
	Progress  *service.ProgressService
}

func NewSessionHandler(questions *service.QuestionService, progress *service.ProgressService) *SessionHandler {
	return &SessionHandler{Questions: questions, Progress: progress}
}

// StartSession hands the client a question set for one practice run.
func (h *SessionHandler) StartSession(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	questions, err := h.Questions.StartSession(context.Background(), category, limit)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No questions available",
				"code":  "NO_QUESTIONS",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CompleteSession grades the submitted run and advances the streak. The
// completion date is always the server's civil date; clients do not get to
// claim a day.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	var req struct {
		Answers         []service.SubmittedAnswer `json:"answers" binding:"required"`
		DurationSeconds int                       `json:"duration_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	result, err := h.Progress.CompleteSession(context.Background(), userID, scoring.Today(), req.Answers, req.DurationSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSessionHistory lists the caller's completed sessions, newest first.
func (h *SessionHandler) GetSessionHistory(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	sessions, err := h.Progress.GetSessionHistory(context.Background(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
