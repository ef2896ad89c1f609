package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"questionnaire-backend/internal/models"
	"questionnaire-backend/internal/services"
	"questionnaire-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var handlerDBSeq atomic.Int64

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlerdb%d?mode=memory&cache=shared", handlerDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Response{}, &models.QuestionnaireCompletion{}))

	user := &models.User{Username: "participant_001", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	responseService := services.NewResponseService(db)
	completionService := services.NewCompletionService(db)
	submissionService := services.NewSubmissionService(db, responseService, completionService)
	handler := NewQuestionnaireHandler(submissionService, responseService, ws.NewHub())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
	})
	r.GET("/api/v1/questionnaires/:type", handler.GetQuestionnaire)
	r.POST("/api/v1/questionnaires/:type/submit", handler.Submit)
	r.GET("/api/v1/questionnaires/:type/responses", handler.GetResponses)

	return r, db, user
}

func submitBody(t *testing.T, answers map[string]map[string]interface{}) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(gin.H{"answers": answers})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func fullSWLSAnswers() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		"1": {"rating": 6, "explanation": "feel good"},
		"2": {"rating": 5, "explanation": "ok"},
		"3": {"rating": 7, "explanation": "great"},
		"4": {"rating": 6, "explanation": "mostly"},
		"5": {"rating": 4, "explanation": "neutral"},
	}
}

func TestSubmitEndpoint(t *testing.T) {
	r, db, user := setupRouter(t)

	t.Run("valid submission returns 201", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaires/SWLS/submit", submitBody(t, fullSWLSAnswers()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var responses int64
		db.Model(&models.Response{}).Where("user_id = ?", user.ID).Count(&responses)
		assert.EqualValues(t, 5, responses)
	})

	t.Run("second submission returns 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaires/SWLS/submit", submitBody(t, fullSWLSAnswers()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("incomplete submission returns 400 with question number", func(t *testing.T) {
		answers := fullSWLSAnswers()
		delete(answers, "3")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaires/PHQ9/submit", submitBody(t, answers))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "question 3")
	})

	t.Run("unknown questionnaire returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaires/GAD7/submit", submitBody(t, fullSWLSAnswers()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetQuestionnaireEndpoint(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/questionnaires/swls", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var view QuestionnaireView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Len(t, view.Questions, 5)
	assert.Equal(t, 1, view.RatingMin)
	assert.Equal(t, 7, view.RatingMax)
}

func TestGetResponsesEndpoint(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaires/SWLS/submit", submitBody(t, fullSWLSAnswers()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/questionnaires/SWLS/responses", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Equal(t, i+1, row.QuestionNumber)
	}
}
