package repository

import (
	"context"

	"studytrack-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// Find lists catalog questions, optionally filtered by category. limit <= 0
// means no cap.
func (r *QuestionRepository) Find(ctx context.Context, category string, limit int64) ([]models.Question, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDs fetches the catalog entries for a set of question ids, used when
// grading a submitted session.
func (r *QuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) CreateMany(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
