package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a caller can't probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateUsername = errors.New("username already taken")

	// ErrAlreadyCompleted: the (user, questionnaire) pair already has a
	// completion row.
	ErrAlreadyCompleted = errors.New("questionnaire already completed")

	// ErrStorageConflict: the uniqueness constraint rejected the write at
	// commit time (a concurrent submission won the race).
	ErrStorageConflict = errors.New("submission conflicts with a concurrent write")

	ErrUnknownQuestionnaire = errors.New("unknown questionnaire")
)

// IncompleteSubmissionError reports the first question missing a rating or
// an explanation.
type IncompleteSubmissionError struct {
	QuestionNumber int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("question %d is missing a rating or explanation", e.QuestionNumber)
}

// InvalidRatingError reports a rating outside the questionnaire's domain.
type InvalidRatingError struct {
	QuestionNumber int
	Rating         int
	Min, Max       int
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("question %d: rating %d is outside %d..%d", e.QuestionNumber, e.Rating, e.Min, e.Max)
}

// InvalidQuestionIndexError reports a question number outside 1..N.
type InvalidQuestionIndexError struct {
	QuestionNumber int
}

func (e *InvalidQuestionIndexError) Error() string {
	return fmt.Sprintf("question number %d is out of range", e.QuestionNumber)
}

// EmptyExplanationError reports an explanation that is empty after trimming.
type EmptyExplanationError struct {
	QuestionNumber int
}

func (e *EmptyExplanationError) Error() string {
	return fmt.Sprintf("question %d: explanation must not be empty", e.QuestionNumber)
}
