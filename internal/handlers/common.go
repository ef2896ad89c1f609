package handlers

import (
	"errors"
	"net/http"

	"questionnaire-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// submissionStatus maps the submission error taxonomy onto HTTP status
// codes. Storage-level failures stay generic so internal detail never
// reaches the participant.
func submissionStatus(err error) (int, string) {
	var incomplete *services.IncompleteSubmissionError
	var badRating *services.InvalidRatingError
	var badIndex *services.InvalidQuestionIndexError
	var emptyExp *services.EmptyExplanationError

	switch {
	case errors.Is(err, services.ErrAlreadyCompleted),
		errors.Is(err, services.ErrStorageConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrUnknownQuestionnaire):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &incomplete),
		errors.As(err, &badRating),
		errors.As(err, &badIndex),
		errors.As(err, &emptyExp):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "submission failed, please retry"
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}
