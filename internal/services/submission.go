package services

import (
	"strings"
	"time"

	"questionnaire-backend/internal/questionnaire"

	"gorm.io/gorm"
)

// Answer is one raw form entry. A nil Rating means the participant left the
// rating blank.
type Answer struct {
	Rating      *int
	Explanation string
}

// SubmissionResult is the confirmation returned after a successful submit.
type SubmissionResult struct {
	UserID        uint               `json:"user_id"`
	Questionnaire questionnaire.Type `json:"questionnaire_type"`
	CompletedAt   time.Time          `json:"completed_at"`
}

// SubmissionService turns one raw questionnaire submission into N response
// rows plus a single completion row, or writes nothing at all.
type SubmissionService struct {
	db          *gorm.DB
	responses   *ResponseService
	completions *CompletionService
}

func NewSubmissionService(db *gorm.DB, responses *ResponseService, completions *CompletionService) *SubmissionService {
	return &SubmissionService{db: db, responses: responses, completions: completions}
}

// Submit validates the full answer set and writes it atomically.
//
// The pre-check and the write are two steps without a row lock; when two
// submissions race, the unique index on (user_id, questionnaire_type) lets
// exactly one transaction commit and the loser rolls back with
// ErrAlreadyCompleted or ErrStorageConflict, leaving no partial rows.
func (s *SubmissionService) Submit(userID uint, qType questionnaire.Type, answers map[int]Answer) (*SubmissionResult, error) {
	def, ok := questionnaire.Get(qType)
	if !ok {
		return nil, ErrUnknownQuestionnaire
	}

	done, err := s.completions.HasCompleted(userID, qType)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrAlreadyCompleted
	}

	// Completeness: every question needs a rating and an explanation.
	for n := 1; n <= def.QuestionCount(); n++ {
		a, ok := answers[n]
		if !ok || a.Rating == nil || strings.TrimSpace(a.Explanation) == "" {
			return nil, &IncompleteSubmissionError{QuestionNumber: n}
		}
	}

	// Domain checks before any write.
	for n := 1; n <= def.QuestionCount(); n++ {
		a := answers[n]
		if err := validateAnswer(def, n, *a.Rating, a.Explanation); err != nil {
			return nil, err
		}
	}

	result := &SubmissionResult{UserID: userID, Questionnaire: qType}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for n := 1; n <= def.QuestionCount(); n++ {
			a := answers[n]
			if err := s.responses.append(tx, def, userID, n, *a.Rating, a.Explanation); err != nil {
				return err
			}
		}
		if err := s.completions.markCompleted(tx, userID, qType); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.CompletedAt = time.Now()
	return result, nil
}
