package response_models

// Coordinates is a WGS84 point. Both fields must be finite when a value is
// attached to anything that claims to be mappable.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Suggestion is a single recommended place, venue, event or activity.
// Title and Description are always set; Coordinates being nil means the item
// is not mappable and photo/map enrichment should skip it.
type Suggestion struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Location      string       `json:"location,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Price         string       `json:"price,omitempty"`
	Rating        float64      `json:"rating,omitempty"`
	Date          string       `json:"date,omitempty"`
	Timing        string       `json:"timing,omitempty"`
	BestTimeOfDay string       `json:"bestTimeOfDay,omitempty"`
}

type ItineraryDay struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

type Destination struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// TravelPlan is the root aggregate produced by a full-plan generation call.
// Events may be absent in the raw model output; validation normalizes it to
// an empty slice. Every other slice must have been present in the source.
type TravelPlan struct {
	Destination        Destination    `json:"destination"`
	MustSeeAttractions []Suggestion   `json:"mustSeeAttractions"`
	HiddenGems         []Suggestion   `json:"hiddenGems"`
	Restaurants        []Suggestion   `json:"restaurants"`
	Itinerary          []ItineraryDay `json:"itinerary"`
	Events             []Suggestion   `json:"events"`
	PracticalAdvice    string         `json:"practicalAdvice"`
	Accommodation      []Suggestion   `json:"accommodation"`
}
