// internal/interfaces/http/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/domain/search"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage/memory"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
)

const testSessionID = "test-session"

func testRules() pricing.Rules {
	return pricing.NewRules(config.PricingConfig{
		TaxRate:               decimal.RequireFromString("0.07"),
		FreeShippingThreshold: decimal.RequireFromString("100.00"),
		StandardShippingRate:  decimal.RequireFromString("8.99"),
		ExpressShippingRate:   decimal.RequireFromString("12.99"),
		NextDayShippingRate:   decimal.RequireFromString("24.99"),
	})
}

func testCatalog() *catalog.Service {
	return catalog.NewServiceWithData([]catalog.Product{
		{ID: "1", Name: "Wireless Headphones", Description: "Noise cancelling", Category: "electronics", Tags: []string{"audio"}, Price: decimal.RequireFromString("50.00"), InStock: true},
		{ID: "2", Name: "Coffee Mug", Description: "Ceramic", Category: "kitchen", Tags: []string{"ceramic"}, Price: decimal.RequireFromString("12.50"), InStock: true},
	}, []catalog.Review{
		{ID: "101", ProductID: "1", UserName: "Ada", Rating: 5, Title: "Great", Comment: "Love them", Verified: true},
	})
}

// setupRouter wires the full route tree over in-memory services, replacing
// the cookie middleware with a fixed session identifier
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	rules := testRules()
	catalogService := testCatalog()
	cartService := cart.NewService(memory.NewStore(), rules, logger)
	checkoutService := checkout.NewService(cartService, rules)
	searchService := search.NewService(catalogService, 5*time.Millisecond)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_id", testSessionID)
		c.Next()
	})

	routes.SetupRoutes(router, &routes.Handlers{
		Product:  handlers.NewProductHandler(catalogService),
		Cart:     handlers.NewCartHandler(cartService, catalogService),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Search:   handlers.NewSearchHandler(searchService),
	})

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	data, ok := decodeBody(t, w)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func addToCart(t *testing.T, router *gin.Engine, productID string, quantity int) {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": productID,
		"quantity":   quantity,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
