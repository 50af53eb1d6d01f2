package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ShareController struct {
	shareService services.ShareServiceInterface
}

func NewShareController(shareService services.ShareServiceInterface) *ShareController {
	return &ShareController{
		shareService: shareService,
	}
}

// CreateShareLinkHandler godoc
// @Summary Share a finished itinerary
// @Description Store a normalized itinerary under an opaque id with a TTL
// @Tags Share
// @Accept json
// @Produce json
// @Param request body response_models.NormalizedItinerary true "Normalized itinerary"
// @Success 200 {object} response_models.ShareLinkResponse
// @Router /share [post]
func (s *ShareController) CreateShareLinkHandler(c *gin.Context) {
	var req response_models.NormalizedItinerary
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	link, err := s.shareService.CreateShareLink(&req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Share link created")
}

// ResolveShareLinkHandler godoc
// @Summary Resolve a share link
// @Description Fetch a shared itinerary by its opaque id; 404 after expiry
// @Tags Share
// @Produce json
// @Param shareId path string true "Share ID"
// @Success 200 {object} response_models.NormalizedItinerary
// @Failure 404 {object} utils.APIResponse
// @Router /share/{shareId} [get]
func (s *ShareController) ResolveShareLinkHandler(c *gin.Context) {
	shareID := c.Param("shareId")
	if shareID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share ID is required")
		return
	}

	itinerary, err := s.shareService.ResolveShareLink(shareID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Shared itinerary fetched successfully")
}
