package handlers

import (
	"net/http"

	"questionnaire-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	completionService *services.CompletionService
}

func NewDashboardHandler(completionService *services.CompletionService) *DashboardHandler {
	return &DashboardHandler{completionService: completionService}
}

// GetDashboard godoc
// @Summary      Participant dashboard state
// @Description  Completion status for every questionnaire in the study
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	status, err := h.completionService.StatusFor(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load completion status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": status})
}
