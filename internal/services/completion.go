package services

import (
	"errors"
	"time"

	"questionnaire-backend/internal/models"
	"questionnaire-backend/internal/questionnaire"

	"gorm.io/gorm"
)

type CompletionService struct {
	db *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{db: db}
}

func (s *CompletionService) HasCompleted(userID uint, qType questionnaire.Type) (bool, error) {
	var count int64
	err := s.db.Model(&models.QuestionnaireCompletion{}).
		Where("user_id = ? AND questionnaire_type = ?", userID, string(qType)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// StatusFor returns the completion flag for every known questionnaire,
// used to render the participant dashboard.
func (s *CompletionService) StatusFor(userID uint) (map[questionnaire.Type]bool, error) {
	var completions []models.QuestionnaireCompletion
	if err := s.db.Where("user_id = ?", userID).Find(&completions).Error; err != nil {
		return nil, err
	}

	status := make(map[questionnaire.Type]bool)
	for _, def := range questionnaire.All() {
		status[def.Type] = false
	}
	for _, c := range completions {
		status[questionnaire.Type(c.QuestionnaireType)] = true
	}
	return status, nil
}

// MarkCompleted inserts the single completion row for (user, questionnaire).
// The existence check is defense in depth; the composite unique index is
// what actually guarantees at-most-once.
func (s *CompletionService) MarkCompleted(userID uint, qType questionnaire.Type) error {
	return s.markCompleted(s.db, userID, qType)
}

func (s *CompletionService) markCompleted(db *gorm.DB, userID uint, qType questionnaire.Type) error {
	var existing models.QuestionnaireCompletion
	if err := db.Where("user_id = ? AND questionnaire_type = ?", userID, string(qType)).
		First(&existing).Error; err == nil {
		return ErrAlreadyCompleted
	}

	completion := models.QuestionnaireCompletion{
		UserID:            userID,
		QuestionnaireType: string(qType),
		CompletedAt:       time.Now(),
	}
	if err := db.Create(&completion).Error; err != nil {
		// A duplicate here means a concurrent submission won the race
		// after our existence check passed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrStorageConflict
		}
		return err
	}
	return nil
}
