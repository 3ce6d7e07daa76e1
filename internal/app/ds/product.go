package ds

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Product is one catalog line, persisted in Products.txt
type Product struct {
	ID       int
	Name     string
	Quantity int
	Price    float64
}

func NewProduct(id int, name string, quantity int, price float64) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}
}

// SetQuantity rejects negative values and keeps the previous one
func (p *Product) SetQuantity(quantity int) {
	if quantity < 0 {
		logrus.Warnf("invalid quantity %d for product %d, keeping %d", quantity, p.ID, p.Quantity)
		return
	}
	p.Quantity = quantity
}

// SetPrice rejects non-positive values and keeps the previous one
func (p *Product) SetPrice(price float64) {
	if price <= 0 {
		logrus.Warnf("invalid price %.2f for product %d, keeping %.2f", price, p.ID, p.Price)
		return
	}
	p.Price = price
}

// TotalCost is the value of the whole line
func (p *Product) TotalCost() float64 {
	return float64(p.Quantity) * p.Price
}

func (p *Product) String() string {
	return fmt.Sprintf("Product [ID: %d, Name: %s, Quantity: %d, Price: %.2f]", p.ID, p.Name, p.Quantity, p.Price)
}
