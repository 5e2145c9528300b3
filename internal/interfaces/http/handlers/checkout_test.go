// internal/interfaces/http/handlers/checkout_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beginCheckout(t *testing.T, router *gin.Engine) {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestBeginCheckoutWithEmptyCart(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty")
}

func TestBeginCheckout(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)

	w := doRequest(t, router, http.MethodPost, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "information", data["step"])
	assert.Equal(t, false, data["completed"])
	assert.Equal(t, "standard", data["shipping_method"])

	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "50", summary["subtotal"])
	assert.Equal(t, "8.99", summary["shipping"])
	assert.Equal(t, "3.5", summary["tax"])
	assert.Equal(t, "62.49", summary["total"])
}

func TestGetCheckoutWithoutSession(t *testing.T) {
	router := setupRouter(t)

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/checkout"},
		{http.MethodPost, "/api/v1/checkout/advance"},
		{http.MethodPost, "/api/v1/checkout/back"},
	} {
		w := doRequest(t, router, req.method, req.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", req.method, req.path)
	}
}

func TestAdvanceThroughWizard(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)
	beginCheckout(t, router)

	steps := []string{"shipping", "payment", "review"}
	for _, want := range steps {
		w := doRequest(t, router, http.MethodPost, "/api/v1/checkout/advance", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, dataField(t, w)["step"])
	}

	// Advancing from review places the order
	w := doRequest(t, router, http.MethodPost, "/api/v1/checkout/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "completed", data["step"])
	assert.Equal(t, true, data["completed"])

	order, ok := data["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "62.49", order["total"])
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{8}$`, order["order_number"])

	// The placed order emptied the cart
	w = doRequest(t, router, http.MethodGet, "/api/v1/cart", nil)
	totals := cartTotals(t, dataField(t, w))
	assert.Equal(t, float64(0), totals["item_count"])
}

func TestBackFromShippingStep(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)
	beginCheckout(t, router)

	doRequest(t, router, http.MethodPost, "/api/v1/checkout/advance", nil)

	w := doRequest(t, router, http.MethodPost, "/api/v1/checkout/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "information", dataField(t, w)["step"])

	// Back on the first step stays put
	w = doRequest(t, router, http.MethodPost, "/api/v1/checkout/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "information", dataField(t, w)["step"])
}

func TestSetInformation(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)
	beginCheckout(t, router)

	w := doRequest(t, router, http.MethodPut, "/api/v1/checkout/information", gin.H{
		"email":      "buyer@example.com",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"city":       "London",
	})
	require.Equal(t, http.StatusOK, w.Code)

	contact, ok := dataField(t, w)["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "buyer@example.com", contact["email"])
	assert.Equal(t, "Ada", contact["first_name"])
}

func TestSelectShippingMethod(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)
	beginCheckout(t, router)

	w := doRequest(t, router, http.MethodPut, "/api/v1/checkout/shipping-method", gin.H{
		"method_id": "express",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "express", data["shipping_method"])

	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "12.99", summary["shipping"])
	assert.Equal(t, "66.49", summary["total"])
}

func TestSelectUnknownShippingMethodHTTP(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)
	beginCheckout(t, router)

	w := doRequest(t, router, http.MethodPut, "/api/v1/checkout/shipping-method", gin.H{
		"method_id": "teleport",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown shipping method")
}

func TestGetShippingMethods(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)

	w := doRequest(t, router, http.MethodGet, "/api/v1/checkout/shipping-methods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	methods, ok := dataField(t, w)["methods"].([]any)
	require.True(t, ok)
	require.Len(t, methods, 3)

	standard := methods[0].(map[string]any)
	assert.Equal(t, "standard", standard["id"])
	assert.Equal(t, "8.99", standard["price"])
}

func TestAbandonCheckout(t *testing.T) {
	router := setupRouter(t)
	addToCart(t, router, "1", 1)
	beginCheckout(t, router)

	w := doRequest(t, router, http.MethodDelete, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
