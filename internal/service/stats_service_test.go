package service

import (
	"context"
	"errors"
	"testing"

	"studytrack-service/internal/models"
)

func TestGetStats(t *testing.T) {
	progress := &fakeProgressStore{record: &models.UserProgress{
		UserID:                 "user-1",
		CurrentStreak:          3,
		LongestStreak:          7,
		LastStudyDate:          "2024-04-01",
		TotalQuestionsAnswered: 120,
		CorrectAnswers:         90,
	}}
	answers := &fakeAnswerStore{answers: []models.UserAnswer{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q1", IsCorrect: false},
		{QuestionID: "q3", IsCorrect: true},
		{QuestionID: "q-outside-catalog", IsCorrect: true},
	}}
	svc := NewStatsService(progress, answers, newTestCatalog())

	stats, err := svc.GetStats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats.Level != "Intermediate" {
		t.Errorf("Expected Intermediate for 120 answered, got %s", stats.Level)
	}
	if stats.LevelProgress != 46 {
		t.Errorf("Expected 46%% level progress, got %d%%", stats.LevelProgress)
	}
	if stats.RecentPerformance != 75 {
		t.Errorf("Expected 75%% recent performance, got %d%%", stats.RecentPerformance)
	}
	if len(stats.Categories) != 2 {
		t.Fatalf("Expected 2 categories (answer outside catalog skipped), got %d", len(stats.Categories))
	}
	if stats.Categories[0].Category != "anatomy" || stats.Categories[0].Total != 2 {
		t.Errorf("Expected anatomy first with total 2, got %+v", stats.Categories[0])
	}
}

func TestGetStats_NoProgressRecordYieldsBaseline(t *testing.T) {
	svc := NewStatsService(&fakeProgressStore{}, &fakeAnswerStore{}, newTestCatalog())

	stats, err := svc.GetStats(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Level != "Beginner" || stats.LevelProgress != 0 {
		t.Errorf("Expected Beginner/0 baseline, got %s/%d", stats.Level, stats.LevelProgress)
	}
	if stats.RecentPerformance != 0 {
		t.Errorf("Expected 0%% recent performance with no answers, got %d%%", stats.RecentPerformance)
	}
	if stats.Progress.UserID != "new-user" {
		t.Errorf("Expected baseline progress for new-user, got %+v", stats.Progress)
	}
}

func TestGetStats_ReadFailureSurfaces(t *testing.T) {
	readErr := errors.New("store unreachable")
	svc := NewStatsService(&fakeProgressStore{}, &fakeAnswerStore{}, &fakeQuestionStore{findErr: readErr})

	_, err := svc.GetStats(context.Background(), "user-1")
	if !errors.Is(err, readErr) {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}
