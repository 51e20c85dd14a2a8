package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studytrack-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

func (s *QuestionService) ListQuestions(ctx context.Context, category string, limit int64) ([]models.Question, error) {
	return s.Store.Find(ctx, category, limit)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	question, err := s.Store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if !question.HasValidCorrectOption() {
		return fmt.Errorf("correct option must be one of %v", models.OptionLabels)
	}
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	question.CreatedAt = time.Now()
	question.UpdatedAt = question.CreatedAt
	return s.Store.Create(ctx, question)
}

func (s *QuestionService) CreateQuestions(ctx context.Context, questions []models.Question) error {
	now := time.Now()
	for i := range questions {
		if !questions[i].HasValidCorrectOption() {
			return fmt.Errorf("question %d: correct option must be one of %v", i, models.OptionLabels)
		}
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
	}
	return s.Store.CreateMany(ctx, questions)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]any) error {
	update["updated_at"] = time.Now()
	return s.Store.Update(ctx, id, bson.M(update))
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

// StartSession picks the question set for a practice run. ErrNoQuestions
// when the catalog has nothing for the requested category.
func (s *QuestionService) StartSession(ctx context.Context, category string, limit int64) ([]models.Question, error) {
	questions, err := s.Store.Find(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}
