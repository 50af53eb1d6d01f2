package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ConverterController struct {
	converterService services.ConverterServiceInterface
}

func NewConverterController(converterService services.ConverterServiceInterface) *ConverterController {
	return &ConverterController{
		converterService: converterService,
	}
}

// ConvertItineraryHandler godoc
// @Summary Convert a source itinerary
// @Description Normalize an AI-authored or hand-edited itinerary into the structured, geocoded format
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SourceItinerary true "Source itinerary"
// @Success 200 {object} response_models.NormalizedItinerary
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/convert [post]
func (cc *ConverterController) ConvertItineraryHandler(c *gin.Context) {
	var req request_models.SourceItinerary
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	normalized, err := cc.converterService.ConvertItinerary(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, normalized, "Itinerary converted successfully")
}

// ValidateItineraryHandler godoc
// @Summary Validate a source itinerary
// @Description Pre-flight check for user-supplied itinerary JSON; reports defects without converting
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SourceItinerary true "Source itinerary"
// @Success 200 {object} pipeline.ValidationReport
// @Router /itineraries/validate [post]
func (cc *ConverterController) ValidateItineraryHandler(c *gin.Context) {
	var req request_models.SourceItinerary
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	report := cc.converterService.ValidateItinerary(c.Request.Context(), &req)
	utils.RespondSuccess(c, report, "Itinerary validated")
}
