package service

import (
	"context"

	"studytrack-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handwritten in-memory fakes for the store interfaces.

type fakeQuestionStore struct {
	questions []models.Question
	findErr   error
}

func (f *fakeQuestionStore) Find(ctx context.Context, category string, limit int64) ([]models.Question, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Question
	for _, q := range f.questions {
		if category == "" || q.Category == category {
			out = append(out, q)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			return &f.questions[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeQuestionStore) FindByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Question
	for _, q := range f.questions {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) Create(ctx context.Context, q *models.Question) error {
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionStore) CreateMany(ctx context.Context, qs []models.Question) error {
	f.questions = append(f.questions, qs...)
	return nil
}

func (f *fakeQuestionStore) Update(ctx context.Context, id string, update bson.M) error { return nil }
func (f *fakeQuestionStore) Delete(ctx context.Context, id string) error                { return nil }

type fakeProgressStore struct {
	record    *models.UserProgress
	upserts   int
	upsertErr error
}

func (f *fakeProgressStore) FindByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	if f.record == nil {
		return nil, mongo.ErrNoDocuments
	}
	copy := *f.record
	return &copy, nil
}

func (f *fakeProgressStore) Upsert(ctx context.Context, progress *models.UserProgress) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	copy := *progress
	f.record = &copy
	return nil
}

type fakeSessionStore struct {
	sessions  []models.StudySession
	createErr error
}

func (f *fakeSessionStore) Create(ctx context.Context, session *models.StudySession) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionStore) FindByUser(ctx context.Context, userID string, limit int64) ([]models.StudySession, error) {
	return f.sessions, nil
}

type fakeAnswerStore struct {
	answers []models.UserAnswer
}

func (f *fakeAnswerStore) CreateMany(ctx context.Context, answers []models.UserAnswer) error {
	f.answers = append(f.answers, answers...)
	return nil
}

func (f *fakeAnswerStore) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.UserAnswer, error) {
	if limit > 0 && int64(len(f.answers)) > limit {
		return f.answers[:limit], nil
	}
	return f.answers, nil
}

type fakeEventSink struct {
	published []string
}

func (f *fakeEventSink) Publish(eventType string, payload interface{}) error {
	f.published = append(f.published, eventType)
	return nil
}
