// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCatalog(t *testing.T) {
	service := NewService()

	products := service.List()
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Price.IsPositive(), "product %s has non-positive price", p.ID)
	}
}

func TestGetByID(t *testing.T) {
	service := NewService()

	product, ok := service.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, "1", product.ID)

	_, ok = service.GetByID("does-not-exist")
	assert.False(t, ok)
}

func TestListByCategory(t *testing.T) {
	service := NewServiceWithData([]Product{
		{ID: "1", Name: "Headphones", Category: "electronics"},
		{ID: "2", Name: "Mug", Category: "kitchen"},
		{ID: "3", Name: "Speaker", Category: "electronics"},
	}, nil)

	electronics := service.ListByCategory("electronics")
	require.Len(t, electronics, 2)
	assert.Equal(t, "1", electronics[0].ID)
	assert.Equal(t, "3", electronics[1].ID)

	assert.Empty(t, service.ListByCategory("garden"))
}

func TestListByTag(t *testing.T) {
	service := NewServiceWithData([]Product{
		{ID: "1", Tags: []string{"wireless", "audio"}},
		{ID: "2", Tags: []string{"kitchen"}},
		{ID: "3", Tags: []string{"audio"}},
	}, nil)

	audio := service.ListByTag("audio")
	require.Len(t, audio, 2)
	assert.Equal(t, "1", audio[0].ID)
	assert.Equal(t, "3", audio[1].ID)
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	service := NewServiceWithData([]Product{
		{ID: "1", Name: "Wireless Headphones", Description: "Noise cancelling", Category: "electronics", Tags: []string{"audio"}},
		{ID: "2", Name: "Coffee Mug", Description: "Ceramic", Category: "kitchen", Tags: []string{"ceramic"}},
		{ID: "3", Name: "Desk Lamp", Description: "Warm light for late audio sessions", Category: "home", Tags: []string{"lighting"}},
	}, nil)

	tests := []struct {
		query string
		want  []string
	}{
		{"wireless", []string{"1"}},          // name, case-insensitive
		{"WIRELESS", []string{"1"}},
		{"ceramic", []string{"2"}},           // description and tag
		{"kitchen", []string{"2"}},           // category
		{"audio", []string{"1", "3"}},        // tag on one, description on another
		{"lamp", []string{"3"}},
		{"quantum", nil},
	}

	for _, tt := range tests {
		results := service.Search(tt.query)
		var ids []string
		for _, p := range results {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, tt.want, ids, "query %q", tt.query)
	}
}

func TestReviewsForProduct(t *testing.T) {
	service := NewService()

	reviews := service.ReviewsForProduct("1")
	require.NotEmpty(t, reviews)
	for _, r := range reviews {
		assert.Equal(t, "1", r.ProductID)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}

	assert.Empty(t, service.ReviewsForProduct("does-not-exist"))
}

func TestEffectivePrice(t *testing.T) {
	discount := decimal.RequireFromString("79.99")
	product := Product{
		ID:            "1",
		Price:         decimal.RequireFromString("99.99"),
		DiscountPrice: &discount,
	}

	assert.True(t, discount.Equal(product.EffectivePrice()))
	assert.True(t, product.HasDiscount())
	assert.Equal(t, 20, product.DiscountPercentage())

	// 50.00 off 299.99 is 16.667%, which rounds up
	headphones := decimal.RequireFromString("249.99")
	assert.Equal(t, 17, (&Product{
		ID:            "3",
		Price:         decimal.RequireFromString("299.99"),
		DiscountPrice: &headphones,
	}).DiscountPercentage())

	plain := Product{ID: "2", Price: decimal.RequireFromString("10.00")}
	assert.True(t, plain.Price.Equal(plain.EffectivePrice()))
	assert.False(t, plain.HasDiscount())
	assert.Equal(t, 0, plain.DiscountPercentage())
}
