package ds

import "fmt"

// CartItem is a detached snapshot of a catalog line taken at
// add-to-cart time. It lives only for the customer session and is
// never persisted.
type CartItem struct {
	ProductID int
	Name      string
	Quantity  int
	Price     float64
}

func (c *CartItem) Subtotal() float64 {
	return float64(c.Quantity) * c.Price
}

func (c *CartItem) String() string {
	return fmt.Sprintf("Product [ID: %d, Name: %s, Quantity: %d, Price: %.2f]", c.ProductID, c.Name, c.Quantity, c.Price)
}
