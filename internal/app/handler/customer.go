package handler

import (
	"errors"

	"github.com/sirupsen/logrus"

	"shop/internal/app/ds"
	"shop/internal/app/dto"
	"shop/internal/app/repository"
)

// CustomerHandler runs the customer menu over the catalog and a
// private per-session cart. The cart holds detached snapshots and is
// discarded on logout; this flow never persists the catalog.
type CustomerHandler struct {
	user      *ds.User
	inventory *repository.Inventory
	directory *repository.Directory
	cart      []*ds.CartItem
	console   *Console
}

func NewCustomerHandler(user *ds.User, inventory *repository.Inventory, directory *repository.Directory, console *Console) *CustomerHandler {
	return &CustomerHandler{
		user:      user,
		inventory: inventory,
		directory: directory,
		cart:      []*ds.CartItem{},
		console:   console,
	}
}

func (h *CustomerHandler) Run() {
	for {
		h.console.Println("\n----- Customer Menu -----")
		h.console.Println("1. View Products")
		h.console.Println("2. Add to Cart")
		h.console.Println("3. View Cart")
		h.console.Println("4. Remove from Cart")
		h.console.Println("5. Update Profile")
		h.console.Println("6. Logout")

		choice, err := h.console.PromptInt("Enter your choice (1-6): ")
		if errors.Is(err, ErrInputClosed) {
			return
		}
		if err != nil {
			h.console.Println("Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			h.viewProducts()
		case 2:
			h.addToCart()
		case 3:
			h.viewCart()
		case 4:
			h.removeFromCart()
		case 5:
			h.updateProfile()
		case 6:
			h.console.Println("Logging out...")
			return
		default:
			h.console.Println("Invalid choice. Please enter a number between 1 and 6.")
		}
	}
}

func (h *CustomerHandler) viewProducts() {
	h.console.Println("----- Available Products -----")
	for _, p := range h.inventory.Products() {
		h.console.Println(p)
	}
}

// addToCart reserves a quantity of a product: it snapshots the line
// into the cart and subtracts the amount from the available stock.
func (h *CustomerHandler) addToCart() {
	id, err := h.console.PromptInt("Enter product ID to add to cart: ")
	if err != nil {
		h.console.Println("Invalid product ID. Please enter a valid integer.")
		return
	}

	product, err := h.inventory.GetProductByID(id)
	if err != nil {
		h.console.Println("Product not found. Please enter a valid product ID.")
		return
	}

	quantity, err := h.console.PromptInt("Enter quantity: ")
	if err != nil {
		h.console.Println("Invalid quantity. Please enter a valid integer.")
		return
	}

	if quantity <= 0 || quantity > product.Quantity {
		h.console.Println("Invalid quantity. Please enter a valid quantity.")
		return
	}

	item := &ds.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		Price:     product.Price,
	}
	h.cart = append(h.cart, item)
	h.console.Println("Product added to cart:", item)

	if err := h.inventory.SubtractQuantity(id, quantity); err != nil {
		logrus.Error(err)
	}
}

func (h *CustomerHandler) viewCart() {
	h.console.Println("\n----- Your Cart -----")
	for _, item := range h.cart {
		h.console.Println(item)
	}
}

// removeFromCart drops a cart line and hands its quantity back to the
// catalog. The restore adds the line quantity to the catalog quantity
// as it stands at removal time, the legacy arithmetic.
func (h *CustomerHandler) removeFromCart() {
	id, err := h.console.PromptInt("Enter product ID to remove from cart: ")
	if err != nil {
		h.console.Println("Invalid product ID. Please enter a valid integer.")
		return
	}

	index := -1
	for i, item := range h.cart {
		if item.ProductID == id {
			index = i
			break
		}
	}
	if index < 0 {
		h.console.Println("Product not found in cart. Please enter a valid product ID.")
		return
	}

	item := h.cart[index]
	h.cart = append(h.cart[:index], h.cart[index+1:]...)
	h.console.Println("Product removed from cart:", item)

	product, err := h.inventory.GetProductByID(id)
	if err != nil {
		logrus.Error(err)
		return
	}
	if err := h.inventory.UpdateQuantity(id, item.Quantity+product.Quantity); err != nil {
		logrus.Error(err)
	}
}

func (h *CustomerHandler) updateProfile() {
	h.console.Println("----- Update Profile -----")

	name, err := h.console.PromptString("Enter new name: ")
	if err != nil {
		return
	}
	surname, err := h.console.PromptString("Enter new surname: ")
	if err != nil {
		return
	}
	contact, err := h.console.PromptString("Enter new contact info: ")
	if err != nil {
		return
	}
	email, err := h.console.PromptString("Enter new email: ")
	if err != nil {
		return
	}

	upd := dto.ProfileUpdate{
		Name:    name,
		Surname: surname,
		Contact: contact,
		Email:   email,
	}
	if err := h.directory.UpdateProfile(h.user, upd); err != nil {
		h.console.Println("Invalid input. Please provide all required information.")
		h.console.Println("Failed to update profile. Please try again.")
		return
	}
	h.console.Println("Profile updated successfully.")
}
