package models

import "time"

// QuestionnaireCompletion is the sole source of truth for "has this user
// finished this questionnaire". The composite unique index is the
// authoritative guard against double submission.
type QuestionnaireCompletion struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;uniqueIndex:idx_user_questionnaire" json:"user_id"`
	QuestionnaireType string    `gorm:"size:10;not null;uniqueIndex:idx_user_questionnaire" json:"questionnaire_type"`
	CompletedAt       time.Time `json:"completed_at"`
}
