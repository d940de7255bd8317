package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/pkg/utils"
)

const (
	moreItemsBatchSize = 5
	maxTripDuration    = 30

	planTemperature = 0.7
	planMaxTokens   = 4000
)

type GeneratePlanInput struct {
	Destination string
	Date        time.Time
	Duration    int
	Interests   []string
	Language    request_models.Language
}

func (in *GeneratePlanInput) validate() error {
	if strings.TrimSpace(in.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if in.Duration < 1 || in.Duration > maxTripDuration {
		return fmt.Errorf("%w: duration must be between 1 and %d days", utils.ErrInvalidInput, maxTripDuration)
	}
	if len(in.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", utils.ErrInvalidInput)
	}
	if in.Language == "" {
		in.Language = request_models.LanguageEnglish
	}
	if !in.Language.Valid() {
		return fmt.Errorf("%w: unsupported language %q", utils.ErrInvalidInput, in.Language)
	}
	return nil
}

type MoreItemsInput struct {
	Destination    string
	Interests      []string
	Language       request_models.Language
	ExistingTitles []string
}

func (in *MoreItemsInput) validate() error {
	if strings.TrimSpace(in.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if len(in.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", utils.ErrInvalidInput)
	}
	if in.Language == "" {
		in.Language = request_models.LanguageEnglish
	}
	if !in.Language.Valid() {
		return fmt.Errorf("%w: unsupported language %q", utils.ErrInvalidInput, in.Language)
	}
	return nil
}

// PlannerServiceInterface exposes the four generation operations plus the
// streaming variant of full-plan generation. Every call is a single
// request/response round trip; no retries, no shared state between calls.
type PlannerServiceInterface interface {
	GenerateTravelPlan(ctx context.Context, in GeneratePlanInput) (*response_models.TravelPlan, error)
	StreamTravelPlan(ctx context.Context, in GeneratePlanInput, onChunk func(map[string]interface{})) error
	GenerateMoreAttractions(ctx context.Context, in MoreItemsInput) ([]response_models.Suggestion, error)
	GenerateMoreHiddenGems(ctx context.Context, in MoreItemsInput) ([]response_models.Suggestion, error)
	GenerateMoreActivities(ctx context.Context, in MoreItemsInput) ([]response_models.Suggestion, error)
}

type PlannerService struct {
	prompts PromptServiceInterface
	client  utils.CompletionClientInterface
}

func NewPlannerService(prompts PromptServiceInterface, client utils.CompletionClientInterface) PlannerServiceInterface {
	return &PlannerService{
		prompts: prompts,
		client:  client,
	}
}

func (s *PlannerService) GenerateTravelPlan(ctx context.Context, in GeneratePlanInput) (*response_models.TravelPlan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := s.prompts.BuildPlanPrompts(PlanPromptInput{
		Destination: in.Destination,
		Date:        in.Date,
		Duration:    in.Duration,
		Interests:   in.Interests,
		Language:    in.Language,
	})

	content, err := s.client.CreateCompletion(ctx, utils.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  planTemperature,
		MaxTokens:    planMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Received model response, parsing JSON: %.200s", content)

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDecodeFailed, err)
	}

	if !ValidatePlanShape(raw) {
		return nil, utils.ErrInvalidPlanFormat
	}

	return planFromShape(raw)
}

// planFromShape converts the validated dynamic object into the typed plan.
// Validation only guarantees top-level shape, so field-level type mismatches
// can still surface here and count as format failures.
func planFromShape(raw map[string]interface{}) (*response_models.TravelPlan, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidPlanFormat, err)
	}

	var plan response_models.TravelPlan
	if err := json.Unmarshal(buf, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidPlanFormat, err)
	}

	return &plan, nil
}

// StreamTravelPlan runs the same generation with a streamed transport,
// emitting each complete partial object the decoder assembles. Emitted
// partials are untyped; only the blocking path yields a validated TravelPlan.
func (s *PlannerService) StreamTravelPlan(ctx context.Context, in GeneratePlanInput, onChunk func(map[string]interface{})) error {
	if err := in.validate(); err != nil {
		return err
	}

	systemPrompt, userPrompt := s.prompts.BuildPlanPrompts(PlanPromptInput{
		Destination: in.Destination,
		Date:        in.Date,
		Duration:    in.Duration,
		Interests:   in.Interests,
		Language:    in.Language,
	})

	body, err := s.client.StreamCompletion(ctx, utils.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  planTemperature,
		MaxTokens:    planMaxTokens,
	})
	if err != nil {
		return err
	}
	defer body.Close()

	return utils.NewStreamDecoder(body).Decode(onChunk)
}

func (s *PlannerService) GenerateMoreAttractions(ctx context.Context, in MoreItemsInput) ([]response_models.Suggestion, error) {
	return s.generateMoreItems(ctx, KindAttractions, in)
}

func (s *PlannerService) GenerateMoreHiddenGems(ctx context.Context, in MoreItemsInput) ([]response_models.Suggestion, error) {
	return s.generateMoreItems(ctx, KindHiddenGems, in)
}

func (s *PlannerService) GenerateMoreActivities(ctx context.Context, in MoreItemsInput) ([]response_models.Suggestion, error) {
	return s.generateMoreItems(ctx, KindActivities, in)
}

// generateMoreItems is the shared extender path: narrowed prompt excluding
// already-seen titles, decode of the single-key envelope, strict per-item
// validation, all-or-nothing on the batch of 5. Response order is preserved;
// duplicate titles the model produces despite instructions are not filtered.
func (s *PlannerService) generateMoreItems(ctx context.Context, kind SuggestionKind, in MoreItemsInput) ([]response_models.Suggestion, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := s.prompts.BuildMoreItemsPrompts(kind, MoreItemsPromptInput{
		Destination:    in.Destination,
		Interests:      in.Interests,
		Language:       in.Language,
		ExistingTitles: in.ExistingTitles,
	})

	content, err := s.client.CreateCompletion(ctx, utils.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  planTemperature,
	})
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDecodeFailed, err)
	}

	rawItems, ok := envelope[kind.ArrayKey()]
	if !ok {
		return nil, fmt.Errorf("%w: expected object with %q array", utils.ErrInvalidBatch, kind.ArrayKey())
	}

	var items []rawSuggestionItem
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return nil, fmt.Errorf("%w: %q is not an array of items: %v", utils.ErrInvalidBatch, kind.ArrayKey(), err)
	}

	if len(items) != moreItemsBatchSize {
		return nil, fmt.Errorf("%w: expected %q array of %d items, got %d",
			utils.ErrInvalidBatch, kind.ArrayKey(), moreItemsBatchSize, len(items))
	}

	suggestions := make([]response_models.Suggestion, 0, len(items))
	for _, item := range items {
		if err := validateBatchItem(item); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidBatch, err)
		}
		suggestions = append(suggestions, response_models.Suggestion{
			Title:       item.Title,
			Description: item.Description,
			Location:    item.Location,
			Coordinates: &response_models.Coordinates{
				Lat: *item.Coordinates.Lat,
				Lng: *item.Coordinates.Lng,
			},
			Timing:        item.Timing,
			BestTimeOfDay: item.BestTimeOfDay,
		})
	}

	return suggestions, nil
}
