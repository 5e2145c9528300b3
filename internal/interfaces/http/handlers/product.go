// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// GetProducts handles GET /products with optional category and tag filters
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var products []catalog.Product

	switch {
	case c.Query("category") != "":
		products = h.catalog.ListByCategory(c.Query("category"))
	case c.Query("tag") != "":
		products = h.catalog.ListByTag(c.Query("tag"))
	default:
		products = h.catalog.List()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetProductReviews handles GET /products/:id/reviews
func (h *ProductHandler) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	if _, ok := h.catalog.GetByID(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	reviews := h.catalog.ReviewsForProduct(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data": gin.H{
			"reviews": reviews,
			"count":   len(reviews),
		},
	})
}

// SearchProducts handles GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	results := h.catalog.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data": gin.H{
			"query":    query,
			"products": results,
			"count":    len(results),
		},
	})
}
