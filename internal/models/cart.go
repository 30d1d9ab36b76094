package models

import "github.com/shopspring/decimal"

// CartLine is a single entry in a cart. Name and Price are snapshots taken
// when the product was added, so a later catalog price change does not
// retroactively affect an open cart.
type CartLine struct {
	ProductKey string          `json:"product_key"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// Cart is the per-session shopping cart: a mapping from product key to its
// line. Every map key equals the ProductKey of its line, and a line's
// quantity is always at least 1.
type Cart struct {
	Lines map[string]CartLine `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Lines: make(map[string]CartLine)}
}

// Add puts the product into the cart with quantity 1, or increments the
// quantity if a line for its key already exists. The line keeps the name
// and price the product carries right now.
func (c *Cart) Add(product *Product) {
	if c.Lines == nil {
		c.Lines = make(map[string]CartLine)
	}
	line, ok := c.Lines[product.ProductKey]
	if ok {
		line.Quantity++
	} else {
		line = CartLine{
			ProductKey: product.ProductKey,
			Name:       product.Name,
			Price:      product.Price,
			Quantity:   1,
		}
	}
	c.Lines[product.ProductKey] = line
}

// Remove deletes the line for the given product key. Removing an absent key
// is a no-op, not an error.
func (c *Cart) Remove(productKey string) {
	delete(c.Lines, productKey)
}

// Total returns the sum of price * quantity over all lines. An empty cart
// totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// LineCount returns the sum of quantities across all lines, which is what
// the storefront's cart badge displays.
func (c *Cart) LineCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := NewCart()
	for key, line := range c.Lines {
		clone.Lines[key] = line
	}
	return clone
}
