package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
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
// @Summary Generate a source itinerary with AI
// @Description Build an itinerary draft from the trip form; the result still needs conversion
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip form"
// @Success 200 {object} request_models.SourceItinerary
// @Failure 502 {object} utils.APIResponse
// @Router /planner/generate [post]
func (p *PlannerController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "from, to and duration are required")
		return
	}

	itinerary, err := p.plannerService.GenerateSourceItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Travel plan created successfully")
}
