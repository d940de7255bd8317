package services

import (
	"fmt"
	"log"
)

var requiredPlanArrays = []string{"mustSeeAttractions", "hiddenGems", "restaurants", "itinerary", "accommodation"}

// ValidatePlanShape is the structural guard for a decoded full-plan object.
// Checks run in order and short-circuit on the first failure, logging which
// field was at fault. It never panics on odd shapes.
//
// The one permitted write: a missing "events" key is normalized to an empty
// array, so validating an already-normalized plan again is a no-op.
//
// Item-level fields are deliberately not deep-validated here; only the
// extension-batch path checks individual suggestions (validateBatchItem).
func ValidatePlanShape(data map[string]interface{}) bool {
	if data == nil {
		log.Printf("Invalid response: not an object")
		return false
	}

	if !hasDestinationCoordinates(data) {
		log.Printf("Invalid response: missing destination coordinates")
		return false
	}

	for _, key := range requiredPlanArrays {
		if _, ok := data[key].([]interface{}); !ok {
			log.Printf("Invalid response: %s is not an array", key)
			return false
		}
	}

	if events, present := data["events"]; present && events != nil {
		if _, ok := events.([]interface{}); !ok {
			log.Printf("Invalid response: events is present but not an array")
			return false
		}
	} else {
		data["events"] = []interface{}{}
	}

	if _, ok := data["practicalAdvice"].(string); !ok {
		log.Printf("Invalid response: practicalAdvice is not a string")
		return false
	}

	return true
}

func hasDestinationCoordinates(data map[string]interface{}) bool {
	destination, ok := data["destination"].(map[string]interface{})
	if !ok {
		return false
	}
	coords, ok := destination["coordinates"].(map[string]interface{})
	if !ok {
		return false
	}
	return coords["lat"] != nil && coords["lng"] != nil
}

// rawSuggestionItem mirrors a decoded extension item with pointer coordinate
// fields, so absent and zero-valued lat/lng stay distinguishable.
type rawSuggestionItem struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Timing        string `json:"timing"`
	BestTimeOfDay string `json:"bestTimeOfDay"`
	Coordinates   *struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	} `json:"coordinates"`
}

// validateBatchItem is the strict per-item check applied to every extension
// item. One bad item rejects the whole batch of 5.
func validateBatchItem(item rawSuggestionItem) error {
	switch {
	case item.Title == "":
		return fmt.Errorf("item is missing title")
	case item.Description == "":
		return fmt.Errorf("item %q is missing description", item.Title)
	case item.Location == "":
		return fmt.Errorf("item %q is missing location", item.Title)
	case item.Coordinates == nil:
		return fmt.Errorf("item %q is missing coordinates", item.Title)
	case item.Coordinates.Lat == nil:
		return fmt.Errorf("item %q is missing coordinates.lat", item.Title)
	case item.Coordinates.Lng == nil:
		return fmt.Errorf("item %q is missing coordinates.lng", item.Title)
	}
	return nil
}
