package request_models

import "tripscout/internal/models/response_models"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageFrench
}

type GeneratePlanRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	Duration    int      `json:"duration" binding:"required"`
	Interests   []string `json:"interests" binding:"required"`
	Language    Language `json:"language"`
}

type SharePlanRequest struct {
	Plan     response_models.TravelPlan `json:"plan" binding:"required"`
	Language Language                   `json:"language"`
}

type MoreItemsRequest struct {
	Destination    string   `json:"destination" binding:"required"`
	Interests      []string `json:"interests" binding:"required"`
	Language       Language `json:"language"`
	ExistingTitles []string `json:"existing_titles"`
}
