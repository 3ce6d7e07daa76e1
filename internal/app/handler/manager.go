package handler

import (
	"errors"

	"github.com/sirupsen/logrus"

	"shop/internal/app/ds"
	"shop/internal/app/repository"
)

// ManagerHandler runs the warehouse manager menu. Save and Exit is
// the only place the catalog is written back to file.
type ManagerHandler struct {
	inventory *repository.Inventory
	console   *Console
}

func NewManagerHandler(inventory *repository.Inventory, console *Console) *ManagerHandler {
	return &ManagerHandler{
		inventory: inventory,
		console:   console,
	}
}

func (h *ManagerHandler) Run() {
	for {
		h.console.Println("\n----- Warehouse Manager Menu -----")
		h.console.Println("1. Display Products")
		h.console.Println("2. Add Product")
		h.console.Println("3. Subtract Quantity")
		h.console.Println("4. Save and Exit")

		choice, err := h.console.PromptInt("Enter your choice (1-4): ")
		if errors.Is(err, ErrInputClosed) {
			return
		}
		if err != nil {
			h.console.Println("Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			h.displayProducts()
		case 2:
			h.addProduct()
		case 3:
			h.subtractQuantity()
		case 4:
			if err := h.inventory.Save(); err != nil {
				logrus.Errorf("error writing products to file: %v", err)
			}
			h.console.Println("Exiting Warehouse Manager. Products saved to file.")
			return
		default:
			h.console.Println("Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}

func (h *ManagerHandler) displayProducts() {
	h.console.Println("----- Available Products -----")
	for _, p := range h.inventory.Products() {
		h.console.Println(p)
	}
}

func (h *ManagerHandler) addProduct() {
	id, err := h.console.PromptInt("Enter product ID: ")
	if err != nil {
		h.console.Println("Invalid product ID. Please enter a valid integer.")
		return
	}
	name, err := h.console.PromptString("Enter product name: ")
	if err != nil {
		return
	}
	quantity, err := h.console.PromptInt("Enter quantity: ")
	if err != nil {
		h.console.Println("Invalid quantity. Please enter a valid integer.")
		return
	}
	price, err := h.console.PromptFloat("Enter price: ")
	if err != nil {
		h.console.Println("Invalid price. Please enter a valid number.")
		return
	}

	if err := h.inventory.AddProduct(ds.NewProduct(id, name, quantity, price)); err != nil {
		h.console.Printf("Product with ID %d already exists.\n", id)
		return
	}
	h.console.Println("Product added:", name)
}

// subtractQuantity reports insufficient stock and unknown id as
// distinct failures.
func (h *ManagerHandler) subtractQuantity() {
	id, err := h.console.PromptInt("Enter product ID: ")
	if err != nil {
		h.console.Println("Invalid product ID. Please enter a valid integer.")
		return
	}
	amount, err := h.console.PromptInt("Enter quantity to subtract: ")
	if err != nil {
		h.console.Println("Invalid quantity. Please enter a valid integer.")
		return
	}

	err = h.inventory.SubtractQuantity(id, amount)
	switch {
	case errors.Is(err, repository.ErrInsufficientStock):
		h.console.Println("Insufficient quantity. Please enter a valid quantity.")
	case errors.Is(err, repository.ErrProductNotFound):
		h.console.Println("Product not found. Please enter a valid product ID.")
	case err != nil:
		logrus.Error(err)
	default:
		h.console.Printf("Quantity subtracted for product ID: %d\n", id)
	}
}
