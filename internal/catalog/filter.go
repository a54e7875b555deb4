package catalog

import (
	"strings"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

// Filter narrows products by free-text search and category selection.
// A non-empty search matches case-insensitively against name,
// description or category; a non-empty category set restricts to its
// members. Both conditions must pass. Empty criteria pass everything
// through, and the catalog's relative order is preserved.
func Filter(products []entity.Product, search string, categories []string) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(search))

	selected := make(map[string]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}

	for _, p := range products {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if len(selected) > 0 && !selected[p.Category] {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesSearch(p entity.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// Categories returns the distinct product categories in first-seen order.
func Categories(products []entity.Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
