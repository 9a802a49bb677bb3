// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/shopspring/decimal"
)

// CartItem is a single line in a cart. The name and unit price are a
// snapshot taken when the line was added, so later catalog changes do
// not silently reprice a cart the user has already seen.
type CartItem struct {
	ProductID   int64           `json:"product_id"`   // Identifier of the catalog product this line refers to.
	ProductName string          `json:"product_name"` // Name captured at the moment the line was added.
	UnitPrice   decimal.Decimal `json:"unit_price"`   // Price captured at the moment the line was added.
	Quantity    int64           `json:"quantity"`     // Number of units, always > 0.
}

// Cart is the per-user shopping cart. A user owns at most one cart for
// the process lifetime; it is created lazily on first access and is
// cleared in place rather than deleted.
type Cart struct {
	ID     int64      `json:"id"`      // Monotonically allocated cart identifier.
	UserID int64      `json:"user_id"` // Owner of this cart; unique across carts.
	Items  []CartItem `json:"items"`   // Ordered lines, at most one per ProductID.
}

// FindItem returns the index of the line for the given product, or -1.
func (c *Cart) FindItem(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}

	return -1
}

// Total returns the sum of unit price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}

	return total
}

// Clone returns a deep copy of the cart. Stores hand out clones so that
// callers never hold a reference into guarded state.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		ID:     c.ID,
		UserID: c.UserID,
		Items:  make([]CartItem, len(c.Items)),
	}
	copy(clone.Items, c.Items)

	return clone
}
