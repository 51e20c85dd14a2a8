package repository

import (
	"context"

	"studytrack-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("users")}
}

// FindByUser returns mongo.ErrNoDocuments for first-time users; callers use
// that to take the create-record branch.
func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert writes the full new progress record in one operation. The record is
// keyed by user id, so a user never gets two.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": progress.UserID}, progress, opts)
	return err
}

// FindByLastStudyDate lists users whose streak last moved on the given civil
// date. Used by the at-risk sweep; read-only.
func (r *ProgressRepository) FindByLastStudyDate(ctx context.Context, date string) ([]models.UserProgress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"last_study_date": date})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.UserProgress
	for cur.Next(ctx) {
		var p models.UserProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}
