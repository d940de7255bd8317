package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type ShareController struct {
	shareService services.ShareServiceInterface
}

func NewShareController(shareService services.ShareServiceInterface) *ShareController {
	return &ShareController{
		shareService: shareService,
	}
}

// SavePlanHandler godoc
// @Summary Save a plan for sharing
// @Description Persist a generated plan and return its share code and access token
// @Tags Shares
// @Accept json
// @Produce json
// @Param request body request_models.SharePlanRequest true "Plan to share"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/shared [post]
func (s *ShareController) SavePlanHandler(c *gin.Context) {
	var req request_models.SharePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	shared, err := s.shareService.SavePlan(c.Request.Context(), &req.Plan, req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shared, "Plan saved successfully")
}

// GetSharedPlanHandler godoc
// @Summary Fetch a shared plan
// @Description Resolve a share code plus access token back into the stored plan
// @Tags Shares
// @Produce json
// @Param code path string true "Share code"
// @Param token query string true "Access token issued at save time"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /plans/shared/{code} [get]
func (s *ShareController) GetSharedPlanHandler(c *gin.Context) {
	code := c.Param("code")
	token := c.Query("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "token is required")
		return
	}

	plan, err := s.shareService.GetSharedPlan(c.Request.Context(), code, token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Shared plan fetched successfully")
}
