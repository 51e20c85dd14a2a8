package repository

import (
	"context"

	"studytrack-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("studySessions")}
}

// Create appends one record per completed practice run. Session records are
// never updated afterwards.
func (r *SessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

// FindByUser returns the user's session history, newest date first.
func (r *SessionRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.StudySession, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.StudySession
	for cur.Next(ctx) {
		var s models.StudySession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, cur.Err()
}
