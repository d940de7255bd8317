package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlanShape() map[string]interface{} {
	raw := `{
		"destination": {"name": "Lisbon", "coordinates": {"lat": 38.7223, "lng": -9.1393}},
		"mustSeeAttractions": [],
		"hiddenGems": [],
		"restaurants": [],
		"itinerary": [],
		"events": [],
		"practicalAdvice": "Take the tram 28 early in the morning",
		"accommodation": []
	}`
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		panic(err)
	}
	return data
}

func TestValidatePlanShapeAcceptsCompletePlan(t *testing.T) {
	assert.True(t, ValidatePlanShape(validPlanShape()))
}

func TestValidatePlanShapeRejectsNil(t *testing.T) {
	assert.False(t, ValidatePlanShape(nil))
}

func TestValidatePlanShapeRejectsMissingDestinationCoordinates(t *testing.T) {
	data := validPlanShape()
	data["destination"] = map[string]interface{}{"name": "Lisbon"}
	assert.False(t, ValidatePlanShape(data))
}

func TestValidatePlanShapeAcceptsZeroCoordinates(t *testing.T) {
	data := validPlanShape()
	data["destination"] = map[string]interface{}{
		"name":        "Null Island",
		"coordinates": map[string]interface{}{"lat": float64(0), "lng": float64(0)},
	}
	assert.True(t, ValidatePlanShape(data))
}

func TestValidatePlanShapeRejectsMissingRequiredArrays(t *testing.T) {
	for _, key := range []string{"mustSeeAttractions", "hiddenGems", "restaurants", "itinerary", "accommodation"} {
		data := validPlanShape()
		delete(data, key)
		assert.False(t, ValidatePlanShape(data), "missing %s should be rejected", key)

		data = validPlanShape()
		data[key] = "not an array"
		assert.False(t, ValidatePlanShape(data), "non-array %s should be rejected", key)
	}
}

func TestValidatePlanShapeNormalizesMissingEvents(t *testing.T) {
	data := validPlanShape()
	delete(data, "events")

	require.True(t, ValidatePlanShape(data))
	assert.Equal(t, []interface{}{}, data["events"])

	// Revalidating the normalized plan is a no-op.
	require.True(t, ValidatePlanShape(data))
	assert.Equal(t, []interface{}{}, data["events"])
}

func TestValidatePlanShapeRejectsNonArrayEvents(t *testing.T) {
	data := validPlanShape()
	data["events"] = map[string]interface{}{"title": "Festival"}
	assert.False(t, ValidatePlanShape(data))
}

func TestValidatePlanShapeRejectsMissingPracticalAdvice(t *testing.T) {
	data := validPlanShape()
	delete(data, "practicalAdvice")
	assert.False(t, ValidatePlanShape(data))

	data = validPlanShape()
	data["practicalAdvice"] = 42
	assert.False(t, ValidatePlanShape(data))
}

func TestValidateBatchItem(t *testing.T) {
	lat, lng := 38.7223, -9.1393
	complete := rawSuggestionItem{
		Title:       "Belém Tower",
		Description: "Sixteenth century fortified tower",
		Location:    "Av. Brasília, Lisbon",
		Coordinates: &struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		}{Lat: &lat, Lng: &lng},
	}
	assert.NoError(t, validateBatchItem(complete))

	missingTitle := complete
	missingTitle.Title = ""
	assert.ErrorContains(t, validateBatchItem(missingTitle), "missing title")

	missingCoords := complete
	missingCoords.Coordinates = nil
	assert.ErrorContains(t, validateBatchItem(missingCoords), "missing coordinates")

	missingLng := complete
	missingLng.Coordinates = &struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}{Lat: &lat}
	assert.ErrorContains(t, validateBatchItem(missingLng), "missing coordinates.lng")

	zero := 0.0
	zeroCoords := complete
	zeroCoords.Coordinates = &struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}{Lat: &zero, Lng: &zero}
	assert.NoError(t, validateBatchItem(zeroCoords))
}
