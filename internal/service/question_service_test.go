package service

import (
	"context"
	"errors"
	"testing"

	"studytrack-service/internal/models"
)

func TestStartSession_EmptyCatalog(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{})

	_, err := svc.StartSession(context.Background(), "", 10)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Expected ErrNoQuestions, got %v", err)
	}
}

func TestStartSession_FiltersByCategory(t *testing.T) {
	svc := NewQuestionService(newTestCatalog())

	questions, err := svc.StartSession(context.Background(), "anatomy", 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("Expected 2 anatomy questions, got %d", len(questions))
	}

	if _, err := svc.StartSession(context.Background(), "no-such-category", 10); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Expected ErrNoQuestions for unknown category, got %v", err)
	}
}

func TestCreateQuestion_RejectsBadCorrectOption(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{})

	err := svc.CreateQuestion(context.Background(), &models.Question{
		Content:       "What?",
		CorrectOption: "E",
	})
	if err == nil {
		t.Error("Expected error for correct option outside A-D")
	}
}

func TestCreateQuestion_AssignsID(t *testing.T) {
	store := &fakeQuestionStore{}
	svc := NewQuestionService(store)

	q := &models.Question{Content: "What?", CorrectOption: "B"}
	if err := svc.CreateQuestion(context.Background(), q); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("Expected an id to be assigned")
	}
	if len(store.questions) != 1 {
		t.Errorf("Expected 1 stored question, got %d", len(store.questions))
	}
}

func TestGetQuestion_NotFound(t *testing.T) {
	svc := NewQuestionService(newTestCatalog())

	_, err := svc.GetQuestion(context.Background(), "missing")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound, got %v", err)
	}
}
