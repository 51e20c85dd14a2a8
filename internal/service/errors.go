package service

import "errors"

// Domain errors surfaced to the handler boundary. Backend read/write
// failures are wrapped with context instead; none of these are fatal to the
// process.
var (
	ErrNoQuestions      = errors.New("no questions available")
	ErrQuestionNotFound = errors.New("question not found")
	ErrProgressNotFound = errors.New("progress record not found")
)
