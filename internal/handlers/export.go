package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"questionnaire-backend/internal/models"
	"questionnaire-backend/internal/questionnaire"
	"questionnaire-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExportHandler struct {
	db              *gorm.DB
	responseService *services.ResponseService
	scoringService  *services.ScoringService
}

func NewExportHandler(db *gorm.DB, responseService *services.ResponseService, scoringService *services.ScoringService) *ExportHandler {
	return &ExportHandler{db: db, responseService: responseService, scoringService: scoringService}
}

type ExportRow struct {
	Username          string    `json:"username"`
	QuestionnaireType string    `json:"questionnaire_type"`
	QuestionNumber    int       `json:"question_number"`
	Rating            int       `json:"rating"`
	Explanation       string    `json:"explanation"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

type ExportScore struct {
	Username          string `json:"username"`
	QuestionnaireType string `json:"questionnaire_type"`
	Total             int    `json:"total"`
	Category          string `json:"category"`
}

type ExportData struct {
	Responses []ExportRow   `json:"responses"`
	Scores    []ExportScore `json:"scores"`
}

// ExportResponses godoc
// @Summary      Export all study responses
// @Description  Every response row plus per-user questionnaire scores, as JSON or CSV
// @Tags         research
// @Produce      json
// @Param        format query string false "json (default) or csv"
// @Success      200 {object} ExportData
// @Router       /api/v1/research/export [get]
func (h *ExportHandler) ExportResponses(c *gin.Context) {
	responses, err := h.responseService.AllResponses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load responses"})
		return
	}

	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load users"})
		return
	}
	usernames := make(map[uint]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	data := ExportData{}
	type key struct {
		userID uint
		qType  string
	}
	grouped := make(map[key][]models.Response)
	var order []key
	for _, r := range responses {
		data.Responses = append(data.Responses, ExportRow{
			Username:          usernames[r.UserID],
			QuestionnaireType: r.QuestionnaireType,
			QuestionNumber:    r.QuestionNumber,
			Rating:            r.Rating,
			Explanation:       r.Explanation,
			SubmittedAt:       r.SubmittedAt,
		})
		k := key{userID: r.UserID, qType: r.QuestionnaireType}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], r)
	}

	for _, k := range order {
		qType := questionnaire.Type(k.qType)
		def, ok := questionnaire.Get(qType)
		if !ok || len(grouped[k]) != def.QuestionCount() {
			continue
		}
		score := h.scoringService.Score(qType, grouped[k])
		data.Scores = append(data.Scores, ExportScore{
			Username:          usernames[k.userID],
			QuestionnaireType: k.qType,
			Total:             score.Total,
			Category:          score.Category,
		})
	}

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"responses_%s.csv\"", time.Now().Format("2006-01-02")))

		w := csv.NewWriter(c.Writer)
		w.Write([]string{"username", "questionnaire", "question", "rating", "explanation", "submitted_at"})
		for _, row := range data.Responses {
			w.Write([]string{
				row.Username,
				row.QuestionnaireType,
				strconv.Itoa(row.QuestionNumber),
				strconv.Itoa(row.Rating),
				row.Explanation,
				row.SubmittedAt.Format(time.RFC3339),
			})
		}
		w.Flush()
		return
	}

	c.JSON(http.StatusOK, data)
}
