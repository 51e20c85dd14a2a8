package models

import "time"

// UserAnswer is one question attempt. Records are append-only: created once
// at session completion and never updated or deleted.
type UserAnswer struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	QuestionID     string    `bson:"question_id" json:"question_id"`
	SelectedOption string    `bson:"selected_option" json:"selected_option"`
	IsCorrect      bool      `bson:"is_correct" json:"is_correct"`
	AnsweredAt     time.Time `bson:"answered_at" json:"answered_at"`
}
