package models

import "time"

// Response rows are append-only: nothing updates or deletes them except a
// cascading user deletion.
type Response struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	QuestionnaireType string    `gorm:"size:10;not null;index:idx_response_order" json:"questionnaire_type"`
	QuestionNumber    int       `gorm:"not null;index:idx_response_order" json:"question_number"`
	Rating            int       `gorm:"not null" json:"rating"`
	Explanation       string    `gorm:"type:text;not null" json:"explanation"`
	SubmittedAt       time.Time `json:"submitted_at"`
}
