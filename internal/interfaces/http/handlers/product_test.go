// internal/interfaces/http/handlers/product_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProducts(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, float64(2), data["count"])
}

func TestGetProductsByCategory(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products?category=kitchen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), dataField(t, w)["count"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/products?tag=audio", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), dataField(t, w)["count"])
}

func TestGetProduct(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "Wireless Headphones", data["name"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductReviews(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products/1/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), dataField(t, w)["count"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/999/reviews", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchProductsEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/products/search?q=mug", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	assert.Equal(t, "mug", data["query"])
	assert.Equal(t, float64(1), data["count"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/products/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
