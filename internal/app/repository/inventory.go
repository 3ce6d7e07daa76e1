package repository

import (
	"github.com/sirupsen/logrus"

	"shop/internal/app/ds"
	"shop/internal/app/storage"
)

// Inventory is the in-memory product catalog backed by a text file.
// Every lookup is a linear scan; the list keeps insertion order.
type Inventory struct {
	path     string
	products []*ds.Product
}

// NewInventory loads the catalog from file. A parse failure keeps
// whatever loaded before it and is only logged, so the system stays
// usable with a partial catalog.
func NewInventory(path string) *Inventory {
	products, err := storage.LoadProducts(path)
	if err != nil {
		logrus.Errorf("error reading products from file: %v", err)
	}
	return &Inventory{
		path:     path,
		products: products,
	}
}

// GetProductByID scans the catalog for the given id.
func (inv *Inventory) GetProductByID(id int) (*ds.Product, error) {
	for _, p := range inv.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

// AddProduct appends a product; a duplicate id is rejected.
func (inv *Inventory) AddProduct(p *ds.Product) error {
	if _, err := inv.GetProductByID(p.ID); err == nil {
		return ErrDuplicateProduct
	}
	inv.products = append(inv.products, p)
	return nil
}

// UpdateQuantity sets the quantity of an existing product. Negative
// values are rejected by the product itself and leave it unchanged.
func (inv *Inventory) UpdateQuantity(id, quantity int) error {
	p, err := inv.GetProductByID(id)
	if err != nil {
		return err
	}
	p.SetQuantity(quantity)
	return nil
}

// SubtractQuantity removes amount from the available stock of a
// product. Fails without mutating when the stock is too low.
func (inv *Inventory) SubtractQuantity(id, amount int) error {
	p, err := inv.GetProductByID(id)
	if err != nil {
		return err
	}
	if amount > p.Quantity {
		return ErrInsufficientStock
	}
	p.SetQuantity(p.Quantity - amount)
	return nil
}

// Products returns the catalog in insertion order, for display.
func (inv *Inventory) Products() []*ds.Product {
	return inv.products
}

// Save overwrites the product file with the current catalog.
func (inv *Inventory) Save() error {
	return storage.SaveProducts(inv.path, inv.products)
}
