package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

type SharedPlan struct {
	ShareCode string `json:"share_code"`
	Token     string `json:"token"`
	ShareText string `json:"share_text"`
}

type ShareServiceInterface interface {
	SavePlan(ctx context.Context, plan *response_models.TravelPlan, lang request_models.Language) (*SharedPlan, error)
	GetSharedPlan(ctx context.Context, code, token string) (*response_models.TravelPlan, error)
	FormatPlanForSharing(plan *response_models.TravelPlan, lang request_models.Language) string
}

type ShareService struct {
	savedPlans repositories.ISavedPlanRepository
}

func NewShareService(savedPlans repositories.ISavedPlanRepository) ShareServiceInterface {
	return &ShareService{savedPlans: savedPlans}
}

// SavePlan persists a generated plan under a fresh share code and returns the
// code, a signed token scoped to it, and the plain-text rendering.
func (s *ShareService) SavePlan(ctx context.Context, plan *response_models.TravelPlan, lang request_models.Language) (*SharedPlan, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: plan is required", utils.ErrInvalidInput)
	}
	if lang == "" {
		lang = request_models.LanguageEnglish
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	code := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	saved := &db_models.SavedPlan{
		ShareCode:   code,
		Destination: plan.Destination.Name,
		Language:    string(lang),
		Plan:        payload,
	}

	if err := s.savedPlans.Create(ctx, saved); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	token, err := utils.CreateShareToken(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &SharedPlan{
		ShareCode: code,
		Token:     token,
		ShareText: s.FormatPlanForSharing(plan, lang),
	}, nil
}

func (s *ShareService) GetSharedPlan(ctx context.Context, code, token string) (*response_models.TravelPlan, error) {
	claims, err := utils.ValidateShareToken(token)
	if err != nil {
		return nil, err
	}
	if claims.PlanCode != code {
		return nil, utils.ErrShareTokenInvalid
	}

	saved, err := s.savedPlans.GetByShareCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if saved == nil {
		return nil, utils.ErrPlanNotFound
	}

	var plan response_models.TravelPlan
	if err := json.Unmarshal(saved.Plan, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &plan, nil
}

// FormatPlanForSharing renders a plan as sectioned plain text suitable for
// clipboard or chat sharing.
func (s *ShareService) FormatPlanForSharing(plan *response_models.TravelPlan, lang request_models.Language) string {
	fr := lang == request_models.LanguageFrench

	var b strings.Builder
	if fr {
		b.WriteString(fmt.Sprintf("Plan de Voyage pour %s\n\n", plan.Destination.Name))
		b.WriteString("🏛️ Attractions Incontournables\n")
	} else {
		b.WriteString(fmt.Sprintf("Travel Plan for %s\n\n", plan.Destination.Name))
		b.WriteString("🏛️ Must-See Attractions\n")
	}
	for _, attraction := range plan.MustSeeAttractions {
		b.WriteString(fmt.Sprintf("• %s - %s\n", attraction.Title, attraction.Description))
		if mapsURL := utils.GoogleMapsURL(attraction.Title, attraction.Coordinates); mapsURL != "" {
			b.WriteString(fmt.Sprintf("  📍 %s\n", mapsURL))
		}
	}

	if fr {
		b.WriteString("\n💎 Trésors Cachés\n")
	} else {
		b.WriteString("\n💎 Hidden Gems\n")
	}
	for _, gem := range plan.HiddenGems {
		b.WriteString(fmt.Sprintf("• %s - %s\n", gem.Title, gem.Description))
	}

	b.WriteString("\n🍽️ Restaurants\n")
	for _, restaurant := range plan.Restaurants {
		b.WriteString(fmt.Sprintf("• %s - %s (%s)\n", restaurant.Title, restaurant.Description, restaurant.Price))
	}

	dayLabel := "Day"
	if fr {
		b.WriteString("\n📅 Itinéraire\n")
		dayLabel = "Jour"
	} else {
		b.WriteString("\n📅 Itinerary\n")
	}
	for _, day := range plan.Itinerary {
		b.WriteString(fmt.Sprintf("%s %d:\n", dayLabel, day.Day))
		for _, activity := range day.Activities {
			b.WriteString(fmt.Sprintf("• %s\n", activity))
		}
		b.WriteString("\n")
	}

	if fr {
		b.WriteString("💡 Conseils Pratiques\n")
	} else {
		b.WriteString("💡 Practical Advice\n")
	}
	b.WriteString(plan.PracticalAdvice + "\n\n")

	if fr {
		b.WriteString("🏨 Hébergement Recommandé\n")
	} else {
		b.WriteString("🏨 Recommended Accommodation\n")
	}
	for _, area := range plan.Accommodation {
		b.WriteString(fmt.Sprintf("• %s - %s\n", area.Title, area.Description))
	}

	if fr {
		b.WriteString("\nTrouvé sur https://www.tripscout.eu/")
	} else {
		b.WriteString("\nFound on https://www.tripscout.eu/")
	}

	return b.String()
}
