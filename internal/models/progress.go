package models

import "time"

// UserProgress is the single per-user accumulator record. It is created on
// first session completion and thereafter updated in place, once per
// completed session.
//
// LastStudyDate is a civil date string (YYYY-MM-DD); empty means the user
// has never completed a session. LongestStreak >= CurrentStreak holds after
// every update, and the two totals only ever grow.
type UserProgress struct {
	UserID                 string    `bson:"_id" json:"user_id"`
	CurrentStreak          int       `bson:"current_streak" json:"current_streak"`
	LongestStreak          int       `bson:"longest_streak" json:"longest_streak"`
	LastStudyDate          string    `bson:"last_study_date" json:"last_study_date"`
	TotalQuestionsAnswered int       `bson:"total_questions_answered" json:"total_questions_answered"`
	CorrectAnswers         int       `bson:"correct_answers" json:"correct_answers"`
	CreatedAt              time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time `bson:"updated_at" json:"updated_at"`
}
