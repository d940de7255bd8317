package services

import (
	"fmt"
	"strings"
	"time"

	"tripscout/internal/models/request_models"
)

// SuggestionKind selects which "load more" category a narrowed prompt and its
// response array key target.
type SuggestionKind string

const (
	KindAttractions SuggestionKind = "attractions"
	KindHiddenGems  SuggestionKind = "hiddenGems"
	KindActivities  SuggestionKind = "activities"
)

func (k SuggestionKind) ArrayKey() string { return string(k) }

type PlanPromptInput struct {
	Destination string
	Date        time.Time
	Duration    int
	Interests   []string
	Language    request_models.Language
}

type MoreItemsPromptInput struct {
	Destination    string
	Interests      []string
	Language       request_models.Language
	ExistingTitles []string
}

// PromptServiceInterface builds the instruction pair for each generation
// task. Construction is pure: no I/O, deterministic for a given input.
type PromptServiceInterface interface {
	BuildPlanPrompts(in PlanPromptInput) (systemPrompt, userPrompt string)
	BuildMoreItemsPrompts(kind SuggestionKind, in MoreItemsPromptInput) (systemPrompt, userPrompt string)
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

func (p *PromptService) BuildPlanPrompts(in PlanPromptInput) (string, string) {
	fr := in.Language == request_models.LanguageFrench
	interests := strings.Join(in.Interests, ", ")

	languageRule := "All content should be in English"
	timePeriodRule := `use English time periods ("Morning: 9:00 AM", "Afternoon: 2:00 PM", "Evening: 7:00 PM")`
	priceExample := "$$$"
	morningExample := "Morning: 9:00 AM - Visit X"
	afternoonExample := "Afternoon: 2:00 PM - Explore Y"
	eveningExample := "Evening: 7:00 PM - Dinner at Z"
	if fr {
		languageRule = "CRITICAL: ALL text content MUST be in French, including descriptions, activities, and advice"
		timePeriodRule = `use French time periods ("Matin: 9h00", "Après-midi: 14h00", "Soir: 19h00")`
		priceExample = "€€€"
		morningExample = "Matin: 9h00 - Visite de X"
		afternoonExample = "Après-midi: 14h00 - Explorer Y"
		eveningExample = "Soir: 19h00 - Dîner à Z"
	}

	var b strings.Builder
	b.WriteString("You are a travel assistant that MUST respond with ONLY a valid JSON object, no other text. Follow these rules:\n")
	b.WriteString("1. Response must be a single JSON object\n")
	b.WriteString("2. Do not include any explanatory text before or after the JSON\n")
	b.WriteString("3. All string values must be properly escaped\n")
	b.WriteString(fmt.Sprintf("4. CRITICAL: All recommendations MUST be highly relevant to the user's %s\n", interests))
	b.WriteString("5. For each section, provide at least:\n")
	b.WriteString("   - 5 must-see attractions related to that interest\n")
	b.WriteString("   - 5 hidden gems related to that interest\n")
	b.WriteString("   - 3 restaurants that match the interest (especially for Food & Dining)\n")
	b.WriteString("6. CRITICAL: The itinerary MUST:\n")
	b.WriteString(fmt.Sprintf("   - Include exactly %d days\n", in.Duration))
	b.WriteString("   - Have exactly 3 activities per day (morning, afternoon, evening)\n")
	b.WriteString("   - Group activities by interest when possible\n")
	b.WriteString("   - Include specific times for each activity\n")
	b.WriteString("   - Reference the recommended attractions, gems, and restaurants\n")
	b.WriteString("7. Provide at least 3 different relevant districts or areas where to stay, considering the selected interests\n")
	b.WriteString("8. MUST include accurate coordinates (latitude and longitude) for the destination and all locations\n")
	b.WriteString(fmt.Sprintf("9. %s\n", languageRule))
	b.WriteString(fmt.Sprintf("10. For itinerary activities, %s\n", timePeriodRule))
	b.WriteString("11. When suggesting restaurants, prioritize:\n")
	b.WriteString("    - Local cuisine for \"Food & Dining\"\n")
	b.WriteString("    - Family-friendly options for \"Family Activities\"\n")
	b.WriteString("    - Atmospheric venues for \"Culture & History\"\n")
	b.WriteString("    - Quick service for \"Adventure\" activities\n")
	b.WriteString("12. For accommodation recommendations:\n")
	b.WriteString("    - Consider proximity to attractions matching interests\n")
	b.WriteString("    - Suggest areas with relevant amenities (e.g., nightlife districts for \"Nightlife\" interest)\n")
	b.WriteString("13. Use the exact structure below:\n\n")
	b.WriteString(fmt.Sprintf(planStructureTemplate, priceExample, morningExample, afternoonExample, eveningExample))

	var userPrompt string
	if fr {
		userPrompt = fmt.Sprintf(
			"Générez un plan de voyage détaillé pour %s, %d jour(s) qui se concentre spécifiquement sur les intérêts suivants: %s, à partir du %s. "+
				"IMPORTANT: Les recommandations doivent être fortement liées aux intérêts sélectionnés. "+
				"Répondez UNIQUEMENT avec un objet JSON valide qui suit exactement la structure fournie, sans texte supplémentaire. "+
				"Incluez les coordonnées précises pour toutes les locations. TOUT LE CONTENU DOIT ÊTRE EN FRANÇAIS.",
			in.Destination, in.Duration, interests, in.Date.Format("02/01/2006"))
	} else {
		userPrompt = fmt.Sprintf(
			"Generate a detailed travel plan for %s, %d day(s) that specifically focuses on the following interests: %s, starting from %s. "+
				"IMPORTANT: Recommendations must be strongly tied to the selected interests. "+
				"Respond ONLY with a valid JSON object that exactly follows the provided structure, no additional text. "+
				"Include accurate coordinates for all locations.",
			in.Destination, in.Duration, interests, in.Date.Format("1/2/2006"))
	}

	return b.String(), userPrompt
}

func (p *PromptService) BuildMoreItemsPrompts(kind SuggestionKind, in MoreItemsPromptInput) (string, string) {
	fr := in.Language == request_models.LanguageFrench
	interests := strings.Join(in.Interests, ", ")

	languageRule := "All content should be in English"
	if fr {
		languageRule = "ALL text content MUST be in French"
	}

	var b strings.Builder
	switch kind {
	case KindHiddenGems:
		b.WriteString("You are a travel assistant that MUST respond with ONLY a valid JSON object containing a 'hiddenGems' array, no other text. Follow these rules:\n")
		b.WriteString("1. Response must be a JSON object with a single 'hiddenGems' key containing an array of exactly 5 NEW hidden gems\n")
		b.WriteString("2. Each hidden gem must be:\n")
		b.WriteString(fmt.Sprintf("   - Highly relevant to the user's interests: %s\n", interests))
		b.WriteString("   - Less known or off the beaten path\n")
		b.WriteString("   - Unique and authentic to the local culture\n")
		b.WriteString("   - Not commonly found in standard tourist guides\n")
		b.WriteString("3. Do not include any explanatory text before or after the JSON\n")
		b.WriteString("4. Each hidden gem object must follow this exact structure:\n")
		b.WriteString(suggestionItemTemplate)
		b.WriteString(fmt.Sprintf("5. %s\n", languageRule))
		b.WriteString("6. Ensure coordinates are as accurate as possible\n")
	case KindActivities:
		timing := "Suggested duration: 2-3 hours"
		bestTime := "Morning"
		if fr {
			timing = "Durée suggérée: 2-3 heures"
			bestTime = "Matin"
		}
		b.WriteString("You are a travel assistant that MUST respond with ONLY a valid JSON object containing an 'activities' array, no other text. Follow these rules:\n")
		b.WriteString("1. Response must be a JSON object with a single 'activities' key containing an array of exactly 5 NEW activity suggestions\n")
		b.WriteString("2. Each activity must be:\n")
		b.WriteString(fmt.Sprintf("   - Highly relevant to the user's interests: %s\n", interests))
		b.WriteString("   - Specific and actionable\n")
		b.WriteString("   - Include timing information\n")
		b.WriteString("   - Include location or venue when applicable\n")
		b.WriteString("3. Do not include any explanatory text before or after the JSON\n")
		b.WriteString("4. Each activity object must follow this exact structure:\n")
		b.WriteString(fmt.Sprintf(activityItemTemplate, timing, bestTime))
		b.WriteString(fmt.Sprintf("5. %s\n", languageRule))
		b.WriteString("6. Ensure coordinates are as accurate as possible for location-specific activities\n")
	default:
		b.WriteString("You are a travel assistant that MUST respond with ONLY a valid JSON object containing an 'attractions' array, no other text. Follow these rules:\n")
		b.WriteString("1. Response must be a JSON object with a single 'attractions' key containing an array of exactly 5 NEW attractions\n")
		b.WriteString(fmt.Sprintf("2. Each attraction must be highly relevant to the user's interests: %s\n", interests))
		b.WriteString("3. Do not include any explanatory text before or after the JSON\n")
		b.WriteString("4. Each attraction object must follow this exact structure:\n")
		b.WriteString(suggestionItemTemplate)
		b.WriteString(fmt.Sprintf("5. %s\n", languageRule))
		b.WriteString("6. Ensure coordinates are as accurate as possible\n")
		b.WriteString("7. Focus on unique and interesting attractions that match the user's interests\n")
	}
	b.WriteString("Response format must be exactly:\n")
	b.WriteString(fmt.Sprintf("{\n  %q: [\n    { item1 },\n    { item2 },\n    ...\n  ]\n}", kind.ArrayKey()))

	existing := make([]string, 0, len(in.ExistingTitles))
	for _, title := range in.ExistingTitles {
		existing = append(existing, "- "+title)
	}
	excluded := strings.Join(existing, "\n")

	var userPrompt string
	if fr {
		userPrompt = fmt.Sprintf(
			"Générez 5 %s pour %s qui correspondent aux intérêts suivants: %s. Ne pas inclure ces éléments existants:\n%s. "+
				"REPONDEZ UNIQUEMENT AVEC UN OBJET JSON CONTENANT UN TABLEAU '%s'.",
			kind.frenchNoun(), in.Destination, interests, excluded, kind.ArrayKey())
	} else {
		userPrompt = fmt.Sprintf(
			"Generate 5 new %s for %s that match these interests: %s. Do not include these existing items:\n%s. "+
				"RESPOND ONLY WITH A JSON OBJECT CONTAINING A '%s' ARRAY.",
			kind.englishNoun(), in.Destination, interests, excluded, kind.ArrayKey())
	}

	return b.String(), userPrompt
}

func (k SuggestionKind) englishNoun() string {
	switch k {
	case KindHiddenGems:
		return "hidden gems"
	case KindActivities:
		return "activity suggestions"
	default:
		return "attractions"
	}
}

func (k SuggestionKind) frenchNoun() string {
	switch k {
	case KindHiddenGems:
		return "nouveaux trésors cachés"
	case KindActivities:
		return "nouvelles suggestions d'activités"
	default:
		return "nouvelles attractions"
	}
}

const planStructureTemplate = `{
  "destination": {
    "name": "City Name",
    "coordinates": {
      "lat": 12.3456,
      "lng": 78.9012
    }
  },
  "mustSeeAttractions": [
    {
      "title": "Example Attraction",
      "description": "Description of the attraction",
      "location": "Address or area",
      "coordinates": {
        "lat": 12.3456,
        "lng": 78.9012
      }
    }
  ],
  "hiddenGems": [
    {
      "title": "Hidden Spot",
      "description": "Why it's special",
      "location": "Where to find it",
      "coordinates": {
        "lat": 12.3456,
        "lng": 78.9012
      }
    }
  ],
  "restaurants": [
    {
      "title": "Restaurant Name",
      "description": "Type of cuisine and atmosphere",
      "location": "Address",
      "coordinates": {
        "lat": 12.3456,
        "lng": 78.9012
      },
      "price": "%s",
      "rating": 4.5
    }
  ],
  "itinerary": [
    {
      "day": 1,
      "activities": [
        "%s",
        "%s",
        "%s"
      ]
    }
  ],
  "events": [
    {
      "title": "Event Name",
      "description": "What's happening",
      "date": "Event date or timing",
      "location": "Event location",
      "coordinates": {
        "lat": 12.3456,
        "lng": 78.9012
      }
    }
  ],
  "practicalAdvice": "Important tips and information about the destination such as available transportation, weather",
  "accommodation": [
    {
      "title": "District Name",
      "description": "District details",
      "location": "Area",
      "coordinates": {
        "lat": 12.3456,
        "lng": 78.9012
      }
    }
  ]
}`

const suggestionItemTemplate = `{
  "title": "Name",
  "description": "Detailed description",
  "location": "Address or area",
  "coordinates": {
    "lat": 12.3456,
    "lng": 78.9012
  }
}
`

const activityItemTemplate = `{
  "title": "Activity Name",
  "description": "Detailed description of what to do and what to expect",
  "timing": "%s",
  "location": "Where to do this activity",
  "coordinates": {
    "lat": 12.3456,
    "lng": 78.9012
  },
  "bestTimeOfDay": "%s"
}
`
