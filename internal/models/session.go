package models

import "time"

// StudySession is one completed practice run. Append-only, like UserAnswer.
// Date is a civil date in sortable YYYY-MM-DD form, not a timestamp.
type StudySession struct {
	ID                string    `bson:"_id,omitempty" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	Date              string    `bson:"date" json:"date"`
	QuestionsAnswered int       `bson:"questions_answered" json:"questions_answered"`
	CorrectAnswers    int       `bson:"correct_answers" json:"correct_answers"`
	DurationSeconds   int       `bson:"duration_seconds" json:"duration_seconds"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
