package service

import (
	"context"

	"studytrack-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Store interfaces over the repository layer. Services depend on these
// rather than the concrete Mongo types so the session/stats flows can be
// tested against handwritten fakes.

type QuestionStore interface {
	Find(ctx context.Context, category string, limit int64) ([]models.Question, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Question, error)
	Create(ctx context.Context, question *models.Question) error
	CreateMany(ctx context.Context, questions []models.Question) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type AnswerStore interface {
	CreateMany(ctx context.Context, answers []models.UserAnswer) error
	FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.UserAnswer, error)
}

type SessionStore interface {
	Create(ctx context.Context, session *models.StudySession) error
	FindByUser(ctx context.Context, userID string, limit int64) ([]models.StudySession, error)
}

type ProgressStore interface {
	FindByUser(ctx context.Context, userID string) (*models.UserProgress, error)
	Upsert(ctx context.Context, progress *models.UserProgress) error
}

// EventSink is satisfied by event.Publisher. Services treat a nil sink as
// "events not configured".
type EventSink interface {
	Publish(eventType string, payload interface{}) error
}
