package repository

import (
	"context"

	"studytrack-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("userAnswers")}
}

// CreateMany appends one log entry per question attempt. The answer log is
// append-only; there is no update path.
func (r *AnswerRepository) CreateMany(ctx context.Context, answers []models.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	docs := make([]interface{}, len(answers))
	for i := range answers {
		docs[i] = answers[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

// FindRecentByUser returns the user's newest answers first, capped at limit.
func (r *AnswerRepository) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.UserAnswer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "answered_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.UserAnswer
	for cur.Next(ctx) {
		var a models.UserAnswer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, cur.Err()
}
