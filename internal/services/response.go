package services

import (
	"strings"
	"time"

	"questionnaire-backend/internal/models"
	"questionnaire-backend/internal/questionnaire"

	"gorm.io/gorm"
)

type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{db: db}
}

// validateAnswer checks one answer against the questionnaire definition
// without touching the database.
func validateAnswer(def questionnaire.Definition, questionNumber, rating int, explanation string) error {
	if !def.ValidQuestionNumber(questionNumber) {
		return &InvalidQuestionIndexError{QuestionNumber: questionNumber}
	}
	if !def.ValidRating(rating) {
		return &InvalidRatingError{
			QuestionNumber: questionNumber,
			Rating:         rating,
			Min:            def.RatingMin,
			Max:            def.RatingMax,
		}
	}
	if strings.TrimSpace(explanation) == "" {
		return &EmptyExplanationError{QuestionNumber: questionNumber}
	}
	return nil
}

// Append validates and inserts a single immutable response row.
func (s *ResponseService) Append(userID uint, qType questionnaire.Type, questionNumber, rating int, explanation string) error {
	def, ok := questionnaire.Get(qType)
	if !ok {
		return ErrUnknownQuestionnaire
	}
	return s.append(s.db, def, userID, questionNumber, rating, explanation)
}

func (s *ResponseService) append(db *gorm.DB, def questionnaire.Definition, userID uint, questionNumber, rating int, explanation string) error {
	if err := validateAnswer(def, questionNumber, rating, explanation); err != nil {
		return err
	}

	response := models.Response{
		UserID:            userID,
		QuestionnaireType: string(def.Type),
		QuestionNumber:    questionNumber,
		Rating:            rating,
		Explanation:       strings.TrimSpace(explanation),
		SubmittedAt:       time.Now(),
	}
	return db.Create(&response).Error
}

// ResponsesFor returns a user's responses to one questionnaire ordered by
// question number. Read path only, used for audit and export.
func (s *ResponseService) ResponsesFor(userID uint, qType questionnaire.Type) ([]models.Response, error) {
	var responses []models.Response
	err := s.db.Where("user_id = ? AND questionnaire_type = ?", userID, string(qType)).
		Order("question_number ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// AllResponses returns every response in the store, ordered for export.
func (s *ResponseService) AllResponses() ([]models.Response, error) {
	var responses []models.Response
	err := s.db.Order("user_id ASC, questionnaire_type ASC, question_number ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
