package utils

import (
	"fmt"
	"net/url"

	"tripscout/internal/models/response_models"
)

// GoogleMapsURL builds a maps deep link for a mappable suggestion. Returns ""
// when the item carries no coordinates, mirroring the skip-not-error rule for
// unmappable items.
func GoogleMapsURL(title string, coords *response_models.Coordinates) string {
	if coords == nil {
		return ""
	}
	return fmt.Sprintf(
		"https://www.google.com/maps/search/?api=1&query=%s&query_place_id=%g,%g",
		url.QueryEscape(title), coords.Lat, coords.Lng,
	)
}
