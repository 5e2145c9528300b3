// internal/domain/catalog/service.go
package catalog

import (
	"strings"
)

// Service exposes read-only queries over the static product catalog
type Service struct {
	products []Product
	byID     map[string]int
	reviews  []Review
}

// NewService creates a catalog service seeded with the storefront data
func NewService() *Service {
	return newService(seedProducts(), seedReviews())
}

// NewServiceWithData creates a catalog service over caller-provided data.
// Used by tests that need a controlled product set.
func NewServiceWithData(products []Product, reviews []Review) *Service {
	return newService(products, reviews)
}

func newService(products []Product, reviews []Review) *Service {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Service{
		products: products,
		byID:     byID,
		reviews:  reviews,
	}
}

// List returns all products in catalog order
func (s *Service) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID retrieves a single product by its identifier
func (s *Service) GetByID(id string) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// ListByCategory returns all products in the given category
func (s *Service) ListByCategory(category string) []Product {
	var out []Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListByTag returns all products carrying the given tag
func (s *Service) ListByTag(tag string) []Product {
	var out []Product
	for _, p := range s.products {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Search performs a case-insensitive substring match over product name,
// description, category and tags
func (s *Service) Search(query string) []Product {
	q := strings.ToLower(query)

	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			tagsMatch(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out
}

func tagsMatch(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// ReviewsForProduct returns the reviews for a product, in seed order
func (s *Service) ReviewsForProduct(productID string) []Review {
	var out []Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}
