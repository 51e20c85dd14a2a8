package scoring

import (
	"testing"

	"studytrack-service/internal/models"
)

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		total        int
		wantLabel    string
		wantProgress int
	}{
		{0, "Beginner", 0},
		{25, "Beginner", 50},
		{49, "Beginner", 98},
		{50, "Intermediate", 0},
		{125, "Intermediate", 50},
		{199, "Intermediate", 99},
		{200, "Advanced", 0},
		{350, "Advanced", 50},
		{499, "Advanced", 99},
		{500, "Expert", 100},
		{10000, "Expert", 100},
	}

	for _, tc := range testCases {
		label, progress := LevelFor(tc.total)
		if label != tc.wantLabel || progress != tc.wantProgress {
			t.Errorf("LevelFor(%d) = %s/%d%%, want %s/%d%%",
				tc.total, label, progress, tc.wantLabel, tc.wantProgress)
		}
	}
}

func TestRecentPerformance(t *testing.T) {
	var answers []models.UserAnswer
	// 30 answers newest-first: the newest 20 are correct, the 10 older ones
	// wrong. Only the window should count.
	for i := 0; i < 20; i++ {
		answers = append(answers, models.UserAnswer{IsCorrect: true})
	}
	for i := 0; i < 10; i++ {
		answers = append(answers, models.UserAnswer{IsCorrect: false})
	}

	if got := RecentPerformance(answers); got != 100 {
		t.Errorf("Expected 100%% over the newest %d answers, got %d%%", RecentAnswerWindow, got)
	}
}

func TestRecentPerformance_FewerThanWindow(t *testing.T) {
	answers := []models.UserAnswer{
		{IsCorrect: true},
		{IsCorrect: false},
		{IsCorrect: true},
	}
	if got := RecentPerformance(answers); got != 67 {
		t.Errorf("Expected 67%%, got %d%%", got)
	}
	if got := RecentPerformance(nil); got != 0 {
		t.Errorf("Expected 0%% with no answers, got %d%%", got)
	}
}
