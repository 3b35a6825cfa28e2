package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookstemma/edge/internal/middleware"
	"github.com/cookstemma/edge/internal/service"
	"github.com/cookstemma/edge/internal/types"
)

// PreferenceHandler serves the signed-in user's preferences and search history
type PreferenceHandler struct {
	preferences service.IPreferenceService
	validator   middleware.TokenValidator
}

func NewPreferenceHandler(preferences service.IPreferenceService, validator middleware.TokenValidator) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences, validator: validator}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(h.validator))
	{
		protected.GET("/preferences", h.GetPreferences)
		protected.PUT("/preferences", h.UpdatePreferences)
		protected.GET("/search-history", h.GetSearchHistory)
		protected.POST("/search-history", h.AddSearchQuery)
		protected.DELETE("/search-history", h.DeleteSearchHistory)
	}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	prefs, err := h.preferences.GetPreferences(c.Request.Context(), userID.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	prefs, err := h.preferences.UpdatePreferences(c.Request.Context(), userID.String(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) GetSearchHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	queries, err := h.preferences.SearchHistory(c.Request.Context(), userID.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, searchHistoryResponse(queries))
}

func (h *PreferenceHandler) AddSearchQuery(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.AddSearchQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	queries, err := h.preferences.AddSearch(c.Request.Context(), userID.String(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, searchHistoryResponse(queries))
}

// DeleteSearchHistory removes the query named by ?q=, or the whole history without it.
func (h *PreferenceHandler) DeleteSearchHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	q, single := c.GetQuery("q")
	if !single {
		if err := h.preferences.ClearSearchHistory(ctx, userID.String()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, searchHistoryResponse(nil))
		return
	}

	queries, err := h.preferences.RemoveSearch(ctx, userID.String(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, searchHistoryResponse(queries))
}

func searchHistoryResponse(queries []string) types.SearchHistoryResponse {
	if queries == nil {
		queries = []string{}
	}
	return types.SearchHistoryResponse{Queries: queries}
}
