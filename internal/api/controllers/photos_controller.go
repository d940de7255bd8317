package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/response_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type PhotosController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotosController(photoService services.PhotoServiceInterface) *PhotosController {
	return &PhotosController{
		photoService: photoService,
	}
}

// GetPhotosHandler godoc
// @Summary Fetch photos for a place
// @Description Look up Google Places photos either by lat/lng or by a free-text location
// @Tags Photos
// @Produce json
// @Param lat query number false "Latitude, paired with lng"
// @Param lng query number false "Longitude, paired with lat"
// @Param location query string false "Free-text location name"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /photos [get]
func (p *PhotosController) GetPhotosHandler(c *gin.Context) {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")

	if latParam != "" || lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			utils.RespondError(c, http.StatusBadRequest, "lat and lng must both be valid numbers")
			return
		}

		photos, err := p.photoService.GetPlacePhotos(c.Request.Context(), response_models.Coordinates{Lat: lat, Lng: lng})
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondSuccess(c, gin.H{"photos": photos}, "Photos fetched successfully")
		return
	}

	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "location or lat/lng is required")
		return
	}

	photos, err := p.photoService.GetLocationPhotos(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"photos": photos}, "Photos fetched successfully")
}
