package handlers

import (
	"net/http"

	"questionnaire-backend/internal/questionnaire"
	"questionnaire-backend/internal/services"
	"questionnaire-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuestionnaireHandler struct {
	submissionService *services.SubmissionService
	responseService   *services.ResponseService
	hub               *ws.Hub
}

func NewQuestionnaireHandler(submissionService *services.SubmissionService, responseService *services.ResponseService, hub *ws.Hub) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		submissionService: submissionService,
		responseService:   responseService,
		hub:               hub,
	}
}

type QuestionView struct {
	Number int    `json:"number"`
	Prompt string `json:"prompt"`
}

type QuestionnaireView struct {
	Type        questionnaire.Type `json:"type"`
	Name        string             `json:"name"`
	Questions   []QuestionView     `json:"questions"`
	RatingMin   int                `json:"rating_min"`
	RatingMax   int                `json:"rating_max"`
	ScaleLabels map[int]string     `json:"scale_labels"`
}

func toView(def questionnaire.Definition) QuestionnaireView {
	view := QuestionnaireView{
		Type:        def.Type,
		Name:        def.Name,
		RatingMin:   def.RatingMin,
		RatingMax:   def.RatingMax,
		ScaleLabels: def.ScaleLabels,
	}
	for i, prompt := range def.Prompts {
		view.Questions = append(view.Questions, QuestionView{Number: i + 1, Prompt: prompt})
	}
	return view
}

// ListQuestionnaires godoc
// @Summary      List questionnaires
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} QuestionnaireView
// @Router       /api/v1/questionnaires [get]
func (h *QuestionnaireHandler) ListQuestionnaires(c *gin.Context) {
	views := make([]QuestionnaireView, 0, 2)
	for _, def := range questionnaire.All() {
		views = append(views, toView(def))
	}
	c.JSON(http.StatusOK, views)
}

// GetQuestionnaire godoc
// @Summary      Questionnaire definition
// @Description  Prompts and rating scale for rendering the form
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Questionnaire type (SWLS or PHQ9)"
// @Success      200 {object} QuestionnaireView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questionnaires/{type} [get]
func (h *QuestionnaireHandler) GetQuestionnaire(c *gin.Context) {
	qType, ok := questionnaire.Parse(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown questionnaire"})
		return
	}

	def, _ := questionnaire.Get(qType)
	c.JSON(http.StatusOK, toView(def))
}

type AnswerInput struct {
	Rating      *int   `json:"rating"`
	Explanation string `json:"explanation"`
}

type SubmitRequest struct {
	// Keyed by question number, "1".."N".
	Answers map[int]AnswerInput `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary      Submit a questionnaire
// @Description  Persist all answers and the completion marker atomically
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Questionnaire type (SWLS or PHQ9)"
// @Param        request body SubmitRequest true "Answers keyed by question number"
// @Success      201 {object} services.SubmissionResult
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/questionnaires/{type}/submit [post]
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	qType, ok := questionnaire.Parse(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown questionnaire"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers := make(map[int]services.Answer, len(req.Answers))
	for n, a := range req.Answers {
		answers[n] = services.Answer{Rating: a.Rating, Explanation: a.Explanation}
	}

	result, err := h.submissionService.Submit(currentUserID(c), qType, answers)
	if err != nil {
		status, msg := submissionStatus(err)
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	h.hub.Broadcast(ws.WSMessage{Type: "questionnaire_completed", Data: result})

	c.JSON(http.StatusCreated, result)
}

// GetResponses godoc
// @Summary      Own responses for a questionnaire
// @Description  Read path for audit; ordered by question number
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Questionnaire type (SWLS or PHQ9)"
// @Success      200 {array} models.Response
// @Router       /api/v1/questionnaires/{type}/responses [get]
func (h *QuestionnaireHandler) GetResponses(c *gin.Context) {
	qType, ok := questionnaire.Parse(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown questionnaire"})
		return
	}

	responses, err := h.responseService.ResponsesFor(currentUserID(c), qType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load responses"})
		return
	}

	c.JSON(http.StatusOK, responses)
}
