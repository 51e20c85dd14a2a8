package service

import (
	"context"
	"errors"
	"fmt"

	"studytrack-service/internal/models"
	"studytrack-service/internal/scoring"

	"go.mongodb.org/mongo-driver/mongo"
)

// Externally-imposed caps on the stats read path. The catalog cap means some
// historical answers may reference questions outside the fetched slice; the
// aggregator skips those rather than erroring.
const (
	statsAnswerCap  = 100
	statsCatalogCap = 200
)

// UserStats is the full payload for the stats view: the raw progress record
// plus every derived figure, recomputed on each request.
type UserStats struct {
	Progress          *models.UserProgress      `json:"progress"`
	Categories        []scoring.CategorySummary `json:"categories"`
	Level             string                    `json:"level"`
	LevelProgress     int                       `json:"level_progress"`
	RecentPerformance int                       `json:"recent_performance"`
}

type StatsService struct {
	Progress  ProgressStore
	Answers   AnswerStore
	Questions QuestionStore
}

func NewStatsService(progress ProgressStore, answers AnswerStore, questions QuestionStore) *StatsService {
	return &StatsService{Progress: progress, Answers: answers, Questions: questions}
}

// GetStats builds the stats view for one user. A user with no progress
// record gets an empty baseline rather than an error.
func (s *StatsService) GetStats(ctx context.Context, userID string) (*UserStats, error) {
	progress, err := s.Progress.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("read progress: %w", err)
		}
		progress = &models.UserProgress{UserID: userID}
	}

	answers, err := s.Answers.FindRecentByUser(ctx, userID, statsAnswerCap)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	questions, err := s.Questions.Find(ctx, "", statsCatalogCap)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	level, levelProgress := scoring.LevelFor(progress.TotalQuestionsAnswered)

	return &UserStats{
		Progress:          progress,
		Categories:        scoring.CategoryBreakdown(answers, questions),
		Level:             level,
		LevelProgress:     levelProgress,
		RecentPerformance: scoring.RecentPerformance(answers),
	}, nil
}
