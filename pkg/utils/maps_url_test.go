package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripscout/internal/models/response_models"
)

func TestGoogleMapsURL(t *testing.T) {
	url := GoogleMapsURL("Belém Tower", &response_models.Coordinates{Lat: 38.6916, Lng: -9.216})
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Bel%C3%A9m+Tower&query_place_id=38.6916,-9.216",
		url)
}

func TestGoogleMapsURLWithoutCoordinates(t *testing.T) {
	assert.Equal(t, "", GoogleMapsURL("Somewhere", nil))
}
