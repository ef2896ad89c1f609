package services

import (
	"questionnaire-backend/internal/models"
	"questionnaire-backend/internal/questionnaire"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ScoreResult struct {
	Questionnaire questionnaire.Type `json:"questionnaire_type"`
	Total         int                `json:"total"`
	Category      string             `json:"category"`
}

// Score sums a user's ratings for one questionnaire and maps the total onto
// the published interpretation bands. Only meaningful for a complete
// response set.
func (s *ScoringService) Score(qType questionnaire.Type, responses []models.Response) ScoreResult {
	total := 0
	for _, r := range responses {
		total += r.Rating
	}

	result := ScoreResult{Questionnaire: qType, Total: total}
	switch qType {
	case questionnaire.SWLS:
		result.Category = swlsCategory(total)
	case questionnaire.PHQ9:
		result.Category = phq9Severity(total)
	}
	return result
}

// SWLS interpretation bands (Diener et al.), totals 5..35.
func swlsCategory(total int) string {
	switch {
	case total >= 31:
		return "extremely satisfied"
	case total >= 26:
		return "satisfied"
	case total >= 21:
		return "slightly satisfied"
	case total == 20:
		return "neutral"
	case total >= 15:
		return "slightly dissatisfied"
	case total >= 10:
		return "dissatisfied"
	default:
		return "extremely dissatisfied"
	}
}

// PHQ-9 severity bands (Kroenke et al.), totals 0..27.
func phq9Severity(total int) string {
	switch {
	case total >= 20:
		return "severe"
	case total >= 15:
		return "moderately severe"
	case total >= 10:
		return "moderate"
	case total >= 5:
		return "mild"
	default:
		return "minimal"
	}
}
