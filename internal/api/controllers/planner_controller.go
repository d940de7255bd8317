package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// GeneratePlanHandler godoc
// @Summary Generate a travel plan
// @Description Build a complete day-by-day travel plan for a destination
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Plan generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/generate [post]
func (p *PlannerController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}

	plan, err := p.plannerService.GenerateTravelPlan(c.Request.Context(), services.GeneratePlanInput{
		Destination: req.Destination,
		Date:        startDate,
		Duration:    req.Duration,
		Interests:   req.Interests,
		Language:    req.Language,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan generated successfully")
}

// StreamPlanHandler generates the same plan over SSE, emitting each complete
// partial object as soon as the decoder assembles it. Errors after the first
// event can only be reported in-band.
func (p *PlannerController) StreamPlanHandler(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	streamErr := p.plannerService.StreamTravelPlan(c.Request.Context(), services.GeneratePlanInput{
		Destination: req.Destination,
		Date:        startDate,
		Duration:    req.Duration,
		Interests:   req.Interests,
		Language:    req.Language,
	}, func(partial map[string]interface{}) {
		c.SSEvent("plan", partial)
		c.Writer.Flush()
	})
	if streamErr != nil {
		c.SSEvent("error", gin.H{"message": streamErr.Error()})
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", gin.H{})
	c.Writer.Flush()
}

// MoreAttractionsHandler godoc
// @Summary Load more attractions
// @Description Return five additional must-see attractions not seen before
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.MoreItemsRequest true "Extension payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/more-attractions [post]
func (p *PlannerController) MoreAttractionsHandler(c *gin.Context) {
	var req request_models.MoreItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items, err := p.plannerService.GenerateMoreAttractions(c.Request.Context(), services.MoreItemsInput{
		Destination:    req.Destination,
		Interests:      req.Interests,
		Language:       req.Language,
		ExistingTitles: req.ExistingTitles,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Attractions generated successfully")
}

func (p *PlannerController) MoreHiddenGemsHandler(c *gin.Context) {
	var req request_models.MoreItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items, err := p.plannerService.GenerateMoreHiddenGems(c.Request.Context(), services.MoreItemsInput{
		Destination:    req.Destination,
		Interests:      req.Interests,
		Language:       req.Language,
		ExistingTitles: req.ExistingTitles,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Hidden gems generated successfully")
}

func (p *PlannerController) MoreActivitiesHandler(c *gin.Context) {
	var req request_models.MoreItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items, err := p.plannerService.GenerateMoreActivities(c.Request.Context(), services.MoreItemsInput{
		Destination:    req.Destination,
		Interests:      req.Interests,
		Language:       req.Language,
		ExistingTitles: req.ExistingTitles,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Activities generated successfully")
}
