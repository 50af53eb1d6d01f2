package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// ListItinerariesHandler godoc
// @Summary List stored itineraries
// @Description Fetch a paginated list of saved itineraries
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItinerarySummary
// @Security BearerAuth
// @Router /admin/itineraries [get]
func (ic *ItineraryController) ListItinerariesHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	itineraries, err := ic.itineraryService.ListItineraries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryByIdHandler godoc
// @Summary Get a stored itinerary by ID
// @Tags Admin
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.NormalizedItinerary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/itineraries/{id} [get]
func (ic *ItineraryController) GetItineraryByIdHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := ic.itineraryService.GetItineraryById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// CreateItineraryHandler godoc
// @Summary Store a normalized itinerary
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body response_models.NormalizedItinerary true "Normalized itinerary"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/itineraries [post]
func (ic *ItineraryController) CreateItineraryHandler(c *gin.Context) {
	var req response_models.NormalizedItinerary
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ic.itineraryService.CreateItinerary(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary created successfully")
}

// UpdateItineraryHandler godoc
// @Summary Update a stored itinerary
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body response_models.NormalizedItinerary true "Normalized itinerary"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/itineraries/{id} [put]
func (ic *ItineraryController) UpdateItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	var req response_models.NormalizedItinerary
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ic.itineraryService.UpdateItinerary(c.Request.Context(), id, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated successfully")
}

// DeleteItineraryHandler godoc
// @Summary Delete a stored itinerary
// @Tags Admin
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/itineraries/{id} [delete]
func (ic *ItineraryController) DeleteItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	if err := ic.itineraryService.DeleteItinerary(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// BulkCreateItinerariesHandler godoc
// @Summary Bulk insert normalized itineraries
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body []response_models.NormalizedItinerary true "Normalized itineraries"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/itineraries/bulk [post]
func (ic *ItineraryController) BulkCreateItinerariesHandler(c *gin.Context) {
	var req []*response_models.NormalizedItinerary
	if err := c.ShouldBindJSON(&req); err != nil || len(req) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "A non-empty array of itineraries is required")
		return
	}

	count, err := ic.itineraryService.BulkCreateItineraries(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"inserted": count}, "Itineraries inserted successfully")
}
