// internal/interfaces/http/handlers/search.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/search"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// SearchHandler handles the debounced search endpoints
type SearchHandler struct {
	searchService *search.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *search.Service) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SubmitQueryRequest represents a search query submission. An empty query is
// valid and clears the session's results.
type SubmitQueryRequest struct {
	Query string `json:"query"`
}

// SubmitQuery handles PUT /search
func (h *SearchHandler) SubmitQuery(c *gin.Context) {
	var req SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data: " + err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	h.searchService.Submit(sessionID, req.Query)

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Search query submitted",
		"data":    h.searchService.State(sessionID),
	})
}

// GetState handles GET /search
func (h *SearchHandler) GetState(c *gin.Context) {
	snapshot := h.searchService.State(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Search state retrieved successfully",
		"data":    snapshot,
	})
}

// ClearSearch handles DELETE /search
func (h *SearchHandler) ClearSearch(c *gin.Context) {
	h.searchService.Clear(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Search cleared",
	})
}
