package handlers

import (
	"net/http"
	"strconv"

	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/services/provider"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves the provider catalog.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(service provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: service}
}

func providerIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Provider not found", err.Error())
		return 0, false
	}
	return id, true
}

// GetProvidersHandler handles GET /providers?category=&location=&rating=.
func (h *ProviderHandler) GetProvidersHandler(c *gin.Context) {
	filter := models.ProviderFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	if raw := c.Query("rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid rating filter", err.Error())
			return
		}
		filter.MinRating = &minRating
	}

	providers, err := h.Service.ListProviders(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderByIDHandler handles GET /providers/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id, ok := providerIDParam(c)
	if !ok {
		return
	}
	prov, err := h.Service.GetProviderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "provider": prov})
}

// UpdateProviderHandler handles PUT /api/provider/update/:id.
// Fields outside the allow-list are ignored by the decoder.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	id, ok := providerIDParam(c)
	if !ok {
		return
	}
	var update models.ProviderUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	prov, err := h.Service.UpdateProvider(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Provider updated successfully",
		"provider": prov,
	})
}

// DashboardHandler handles GET /api/provider/dashboard/:id.
func (h *ProviderHandler) DashboardHandler(c *gin.Context) {
	id, ok := providerIDParam(c)
	if !ok {
		return
	}
	dash, err := h.Service.GetDashboard(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"stats":          dash.Stats,
		"recentBookings": dash.RecentBookings,
	})
}

// GetCategoriesHandler handles GET /categories.
func (h *ProviderHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.GetCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetLocationsHandler handles GET /locations.
func (h *ProviderHandler) GetLocationsHandler(c *gin.Context) {
	locations, err := h.Service.GetLocations()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}
