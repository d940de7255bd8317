package services

import (
	"context"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"

	"tripscout/internal/models/response_models"
	"tripscout/pkg/utils"
)

const (
	maxPlacePhotos     = 5
	nearbySearchRadius = 500
	photoMaxWidth      = 800
)

// PlacesAPI is the slice of the Google Maps client the photo service uses.
// *maps.Client satisfies it; tests substitute a fake.
type PlacesAPI interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	FindPlaceFromText(ctx context.Context, r *maps.FindPlaceFromTextRequest) (maps.FindPlaceFromTextResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

type PhotoServiceInterface interface {
	GetPlacePhotos(ctx context.Context, coords response_models.Coordinates) ([]string, error)
	GetLocationPhotos(ctx context.Context, location string) ([]string, error)
}

type PhotoService struct {
	places PlacesAPI
	apiKey string
}

func NewPhotoService(places PlacesAPI, apiKey string) PhotoServiceInterface {
	return &PhotoService{
		places: places,
		apiKey: apiKey,
	}
}

// GetPlacePhotos looks up tourist attractions near the coordinates and
// returns their photo URLs, capped at 5.
func (p *PhotoService) GetPlacePhotos(ctx context.Context, coords response_models.Coordinates) ([]string, error) {
	resp, err := p.places.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: coords.Lat, Lng: coords.Lng},
		Radius:   nearbySearchRadius,
		Type:     maps.PlaceTypeTouristAttraction,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlacesUnavailable, err)
	}

	var photos []string
	for _, result := range resp.Results {
		for _, photo := range result.Photos {
			photos = append(photos, p.photoURL(photo.PhotoReference))
			if len(photos) == maxPlacePhotos {
				return photos, nil
			}
		}
	}

	return photos, nil
}

// GetLocationPhotos resolves a free-text location to a place and returns its
// photo URLs. A place without inline photos is retried once through place
// details before giving up.
func (p *PhotoService) GetLocationPhotos(ctx context.Context, location string) ([]string, error) {
	resp, err := p.places.FindPlaceFromText(ctx, &maps.FindPlaceFromTextRequest{
		Input:     location,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields: []maps.PlaceSearchFieldMask{
			maps.PlaceSearchFieldMaskPhotos,
			maps.PlaceSearchFieldMaskPlaceID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlacesUnavailable, err)
	}

	if len(resp.Candidates) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	candidate := resp.Candidates[0]
	if len(candidate.Photos) > 0 {
		return p.photoURLs(candidate.Photos), nil
	}

	if candidate.PlaceID == "" {
		return []string{}, nil
	}

	details, err := p.places.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: candidate.PlaceID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskPhotos},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlacesUnavailable, err)
	}

	return p.photoURLs(details.Photos), nil
}

func (p *PhotoService) photoURLs(photos []maps.Photo) []string {
	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		urls = append(urls, p.photoURL(photo.PhotoReference))
		if len(urls) == maxPlacePhotos {
			break
		}
	}
	return urls
}

func (p *PhotoService) photoURL(reference string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
		photoMaxWidth, url.QueryEscape(reference), url.QueryEscape(p.apiKey),
	)
}
