package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscout/internal/models/db_models"
	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/pkg/utils"
)

type fakeSavedPlanRepository struct {
	plans map[string]*db_models.SavedPlan
}

func newFakeSavedPlanRepository() *fakeSavedPlanRepository {
	return &fakeSavedPlanRepository{plans: map[string]*db_models.SavedPlan{}}
}

func (f *fakeSavedPlanRepository) Create(_ context.Context, plan *db_models.SavedPlan) error {
	f.plans[plan.ShareCode] = plan
	return nil
}

func (f *fakeSavedPlanRepository) GetByShareCode(_ context.Context, code string) (*db_models.SavedPlan, error) {
	return f.plans[code], nil
}

func lisbonPlan() *response_models.TravelPlan {
	return &response_models.TravelPlan{
		Destination: response_models.Destination{
			Name:        "Lisbon",
			Coordinates: response_models.Coordinates{Lat: 38.7223, Lng: -9.1393},
		},
		MustSeeAttractions: []response_models.Suggestion{
			{
				Title:       "Belém Tower",
				Description: "Riverside fortress",
				Coordinates: &response_models.Coordinates{Lat: 38.6916, Lng: -9.216},
			},
		},
		HiddenGems: []response_models.Suggestion{
			{Title: "Jardim da Estrela", Description: "Quiet garden"},
		},
		Restaurants: []response_models.Suggestion{
			{Title: "Cervejaria Ramiro", Description: "Seafood institution", Price: "$$$"},
		},
		Itinerary: []response_models.ItineraryDay{
			{Day: 1, Activities: []string{"Morning: 9:00 AM - Visit Belém Tower"}},
		},
		Events:          []response_models.Suggestion{},
		PracticalAdvice: "Buy a Viva Viagem card.",
		Accommodation: []response_models.Suggestion{
			{Title: "Baixa", Description: "Central and flat"},
		},
	}
}

func TestSavePlanAndGetSharedPlanRoundTrip(t *testing.T) {
	repo := newFakeSavedPlanRepository()
	svc := NewShareService(repo)

	shared, err := svc.SavePlan(context.Background(), lisbonPlan(), request_models.LanguageEnglish)
	require.NoError(t, err)
	assert.Len(t, shared.ShareCode, 12)
	assert.NotEmpty(t, shared.Token)
	assert.Contains(t, shared.ShareText, "Travel Plan for Lisbon")

	stored := repo.plans[shared.ShareCode]
	require.NotNil(t, stored)
	assert.Equal(t, "Lisbon", stored.Destination)
	assert.Equal(t, "en", stored.Language)

	plan, err := svc.GetSharedPlan(context.Background(), shared.ShareCode, shared.Token)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", plan.Destination.Name)
	assert.Equal(t, "Belém Tower", plan.MustSeeAttractions[0].Title)
}

func TestSavePlanRejectsNilPlan(t *testing.T) {
	svc := NewShareService(newFakeSavedPlanRepository())

	_, err := svc.SavePlan(context.Background(), nil, request_models.LanguageEnglish)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetSharedPlanRejectsBadToken(t *testing.T) {
	repo := newFakeSavedPlanRepository()
	svc := NewShareService(repo)

	shared, err := svc.SavePlan(context.Background(), lisbonPlan(), request_models.LanguageEnglish)
	require.NoError(t, err)

	_, err = svc.GetSharedPlan(context.Background(), shared.ShareCode, "not-a-token")
	assert.ErrorIs(t, err, utils.ErrShareTokenInvalid)
}

func TestGetSharedPlanRejectsTokenForOtherCode(t *testing.T) {
	repo := newFakeSavedPlanRepository()
	svc := NewShareService(repo)

	first, err := svc.SavePlan(context.Background(), lisbonPlan(), request_models.LanguageEnglish)
	require.NoError(t, err)
	second, err := svc.SavePlan(context.Background(), lisbonPlan(), request_models.LanguageEnglish)
	require.NoError(t, err)

	_, err = svc.GetSharedPlan(context.Background(), first.ShareCode, second.Token)
	assert.ErrorIs(t, err, utils.ErrShareTokenInvalid)
}

func TestGetSharedPlanUnknownCode(t *testing.T) {
	svc := NewShareService(newFakeSavedPlanRepository())

	token, err := utils.CreateShareToken("missing000000")
	require.NoError(t, err)

	_, err = svc.GetSharedPlan(context.Background(), "missing000000", token)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestFormatPlanForSharingEnglish(t *testing.T) {
	svc := NewShareService(newFakeSavedPlanRepository())

	text := svc.FormatPlanForSharing(lisbonPlan(), request_models.LanguageEnglish)

	assert.Contains(t, text, "Travel Plan for Lisbon")
	assert.Contains(t, text, "🏛️ Must-See Attractions")
	assert.Contains(t, text, "• Belém Tower - Riverside fortress")
	assert.Contains(t, text, "📍 https://www.google.com/maps/search/?api=1&query=Bel%C3%A9m+Tower")
	assert.Contains(t, text, "💎 Hidden Gems")
	assert.Contains(t, text, "• Cervejaria Ramiro - Seafood institution ($$$)")
	assert.Contains(t, text, "Day 1:")
	assert.Contains(t, text, "💡 Practical Advice")
	assert.Contains(t, text, "🏨 Recommended Accommodation")
	assert.Contains(t, text, "Found on https://www.tripscout.eu/")
}

func TestFormatPlanForSharingFrench(t *testing.T) {
	svc := NewShareService(newFakeSavedPlanRepository())

	text := svc.FormatPlanForSharing(lisbonPlan(), request_models.LanguageFrench)

	assert.Contains(t, text, "Plan de Voyage pour Lisbon")
	assert.Contains(t, text, "Attractions Incontournables")
	assert.Contains(t, text, "Trésors Cachés")
	assert.Contains(t, text, "Jour 1:")
	assert.Contains(t, text, "Conseils Pratiques")
	assert.Contains(t, text, "Hébergement Recommandé")
	assert.Contains(t, text, "Trouvé sur https://www.tripscout.eu/")
}
