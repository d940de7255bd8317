package places_fx

import (
	"log"
	"os"
	"tripscout/internal/services"

	"go.uber.org/fx"
	"googlemaps.github.io/maps"
)

var Module = fx.Provide(
	ProvideMapsClient,
	ProvidePhotoService)

func ProvideMapsClient() (*maps.Client, error) {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}
	return maps.NewClient(maps.WithAPIKey(apiKey))
}

func ProvidePhotoService(client *maps.Client) services.PhotoServiceInterface {
	return services.NewPhotoService(client, os.Getenv("GOOGLE_MAPS_API_KEY"))
}
