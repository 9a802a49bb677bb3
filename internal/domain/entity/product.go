// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the authoritative description of a single catalog entry.
// Identity is assigned once by the catalog store and never reused.
type Product struct {
	ID             int64           `json:"id"`              // Monotonically allocated identifier, unique for the process lifetime.
	Name           string          `json:"name"`            // Display name of the product.
	Description    string          `json:"description"`     // Free-form description shown on the product page.
	Price          decimal.Decimal `json:"price"`           // Exact decimal price; never a binary float.
	InventoryCount int64           `json:"inventory_count"` // Units currently on hand, always >= 0.
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.InventoryCount > 0
}

// ProductFilter describes optional search criteria over the catalog.
// Absent criteria impose no constraint; present criteria combine with AND.
type ProductFilter struct {
	NameContains string           // Case-insensitive substring of the product name.
	MinPrice     *decimal.Decimal // Inclusive lower price bound.
	MaxPrice     *decimal.Decimal // Inclusive upper price bound.
	InStock      *bool            // true: only products with inventory; false: only depleted ones.
}

// Matches reports whether the product satisfies every present criterion.
func (f ProductFilter) Matches(p Product) bool {
	if f.NameContains != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.InStock != nil && p.InStock() != *f.InStock {
		return false
	}

	return true
}
