// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// Handlers groups the route handlers wired by the server
type Handlers struct {
	Product  *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Search   *handlers.SearchHandler
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, h *Handlers) {
	v1 := router.Group("/api/v1")

	// Catalog routes
	products := v1.Group("/products")
	{
		products.GET("", h.Product.GetProducts)
		products.GET("/search", h.Product.SearchProducts)
		products.GET("/:id", h.Product.GetProduct)
		products.GET("/:id/reviews", h.Product.GetProductReviews)
	}

	// Cart routes
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.DELETE("", h.Cart.ClearCart)
		cart.GET("/count", h.Cart.GetCartCount)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:id", h.Cart.UpdateItem)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
	}

	// Checkout wizard routes
	checkout := v1.Group("/checkout")
	{
		checkout.POST("", h.Checkout.Begin)
		checkout.GET("", h.Checkout.GetCheckout)
		checkout.DELETE("", h.Checkout.Abandon)
		checkout.POST("/advance", h.Checkout.Advance)
		checkout.POST("/back", h.Checkout.Back)
		checkout.PUT("/information", h.Checkout.SetInformation)
		checkout.PUT("/shipping-method", h.Checkout.SelectShippingMethod)
		checkout.GET("/shipping-methods", h.Checkout.GetShippingMethods)
	}

	// Debounced search routes
	search := v1.Group("/search")
	{
		search.PUT("", h.Search.SubmitQuery)
		search.GET("", h.Search.GetState)
		search.DELETE("", h.Search.ClearSearch)
	}
}
