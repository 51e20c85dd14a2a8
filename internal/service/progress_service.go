package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"studytrack-service/internal/models"
	"studytrack-service/internal/scoring"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmittedAnswer is one question attempt from a completed practice run.
type SubmittedAnswer struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option"`
}

// SessionResult is what the client gets back after completing a session.
type SessionResult struct {
	Tally    scoring.Tally       `json:"tally"`
	Progress models.UserProgress `json:"progress"`
	Outcomes []models.UserAnswer `json:"outcomes"`
}

type ProgressService struct {
	Progress  ProgressStore
	Sessions  SessionStore
	Answers   AnswerStore
	Questions QuestionStore
	Events    EventSink
}

func NewProgressService(progress ProgressStore, sessions SessionStore, answers AnswerStore, questions QuestionStore, events EventSink) *ProgressService {
	return &ProgressService{
		Progress:  progress,
		Sessions:  sessions,
		Answers:   answers,
		Questions: questions,
		Events:    events,
	}
}

// CompleteSession grades a finished practice run and merges it into the
// user's progress record.
//
// The steps run sequentially because each write depends on what was read:
// grade against the catalog, score, read prior progress, advance the streak,
// write the full new progress record once, append one session record and one
// answer record per attempt. Nothing is rolled back on partial failure; the
// next session recomputes from whatever last_study_date persisted.
func (s *ProgressService) CompleteSession(ctx context.Context, userID, today string, submissions []SubmittedAnswer, durationSeconds int) (*SessionResult, error) {
	ids := make([]string, len(submissions))
	for i, sub := range submissions {
		ids[i] = sub.QuestionID
	}
	catalog, err := s.Questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	byID := make(map[string]*models.Question, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	now := time.Now()
	outcomes := make([]bool, len(submissions))
	answers := make([]models.UserAnswer, len(submissions))
	for i, sub := range submissions {
		correct := false
		if q, ok := byID[sub.QuestionID]; ok {
			correct = q.IsCorrect(sub.SelectedOption)
		}
		outcomes[i] = correct
		answers[i] = models.UserAnswer{
			ID:             uuid.NewString(),
			UserID:         userID,
			QuestionID:     sub.QuestionID,
			SelectedOption: sub.SelectedOption,
			IsCorrect:      correct,
			AnsweredAt:     now,
		}
	}
	tally := scoring.Score(outcomes)

	prev, err := s.Progress.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("read progress: %w", err)
		}
		prev = nil
	}

	next := scoring.AdvanceProgress(prev, userID, today, tally)
	if prev == nil {
		next.CreatedAt = now
	}
	next.UpdatedAt = now

	if err := s.Progress.Upsert(ctx, &next); err != nil {
		return nil, fmt.Errorf("write progress: %w", err)
	}

	session := models.StudySession{
		ID:                uuid.NewString(),
		UserID:            userID,
		Date:              today,
		QuestionsAnswered: tally.TotalCount,
		CorrectAnswers:    tally.CorrectCount,
		DurationSeconds:   durationSeconds,
		CreatedAt:         now,
	}
	if err := s.Sessions.Create(ctx, &session); err != nil {
		// Progress already advanced; the streak math self-corrects from
		// last_study_date, so surface the error without undoing the write.
		return nil, fmt.Errorf("append study session: %w", err)
	}

	if err := s.Answers.CreateMany(ctx, answers); err != nil {
		return nil, fmt.Errorf("append answers: %w", err)
	}

	s.publishStreakEvents(userID, prev, &next, tally)

	return &SessionResult{Tally: tally, Progress: next, Outcomes: answers}, nil
}

func (s *ProgressService) publishStreakEvents(userID string, prev, next *models.UserProgress, tally scoring.Tally) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish("study.session.completed", map[string]interface{}{
		"user_id": userID,
		"date":    next.LastStudyDate,
		"total":   tally.TotalCount,
		"correct": tally.CorrectCount,
	}); err != nil {
		log.Printf("Failed to publish session event: %v", err)
	}

	switch {
	case prev != nil && next.CurrentStreak == prev.CurrentStreak+1:
		s.Events.Publish("study.streak.extended", map[string]interface{}{
			"user_id": userID,
			"streak":  next.CurrentStreak,
		})
	case prev != nil && prev.CurrentStreak > 1 && next.CurrentStreak == 1:
		s.Events.Publish("study.streak.reset", map[string]interface{}{
			"user_id":     userID,
			"prev_streak": prev.CurrentStreak,
		})
	}
}

// GetProgress returns the user's progress record, ErrProgressNotFound for
// users who never completed a session.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	progress, err := s.Progress.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("read progress: %w", err)
	}
	return progress, nil
}

// GetSessionHistory lists the user's completed sessions, newest first.
func (s *ProgressService) GetSessionHistory(ctx context.Context, userID string, limit int64) ([]models.StudySession, error) {
	sessions, err := s.Sessions.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("read sessions: %w", err)
	}
	return sessions, nil
}
