package handler

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shop/internal/app/ds"
	"shop/internal/app/dto"
	"shop/internal/app/repository"
	"shop/internal/app/role"
)

// AuthHandler runs the top-level menu: it registers accounts,
// authenticates logins and dispatches the authenticated user into the
// flow for their role. Sessions live only for one flow invocation.
type AuthHandler struct {
	Directory *repository.Directory
	Console   *Console

	// NewInventory builds the catalog instance handed to a flow.
	// A fresh instance is created per successful login.
	NewInventory func() *repository.Inventory
}

func NewAuthHandler(d *repository.Directory, console *Console, newInventory func() *repository.Inventory) *AuthHandler {
	return &AuthHandler{
		Directory:    d,
		Console:      console,
		NewInventory: newInventory,
	}
}

// Run loops over the Register / Login / Exit menu until the user
// exits or the input stream ends.
func (h *AuthHandler) Run() {
	for {
		h.Console.Println("1. Register")
		h.Console.Println("2. Login")
		h.Console.Println("3. Exit")

		choice, err := h.Console.PromptInt("Choose an option: ")
		if errors.Is(err, ErrInputClosed) {
			return
		}
		if err != nil {
			h.Console.Println("Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			h.register()
		case 2:
			h.login()
		case 3:
			h.Console.Println("Goodbye! Thank you for choosing our shop.")
			return
		default:
			h.Console.Println("Invalid choice. Please try again.")
		}
	}
}

// register collects the seven account fields in fixed order.
func (h *AuthHandler) register() {
	prompts := []string{
		"Enter username: ",
		"Enter password: ",
		"Enter user class: ",
		"Enter name: ",
		"Enter surname: ",
		"Enter contact info: ",
		"Enter email: ",
	}

	fields := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		field, err := h.Console.PromptString(prompt)
		if err != nil {
			return
		}
		fields = append(fields, field)
	}

	req := dto.RegisterRequest{
		Login:    fields[0],
		Password: fields[1],
		Role:     fields[2],
		Name:     fields[3],
		Surname:  fields[4],
		Contact:  fields[5],
		Email:    fields[6],
	}

	user, err := h.Directory.Register(req)
	if err != nil {
		h.Console.Println("Username already exists. Please choose a different username.")
		return
	}
	h.Console.Printf("User registered successfully. Welcome, %s!\n", user.Name)
}

func (h *AuthHandler) login() {
	login, err := h.Console.PromptString("Enter username: ")
	if err != nil {
		return
	}
	password, err := h.Console.PromptString("Enter password: ")
	if err != nil {
		return
	}

	user, err := h.Directory.Authenticate(login, password)
	switch {
	case errors.Is(err, repository.ErrUnknownLogin):
		h.Console.Println("Username not found. Please register first.")
		return
	case errors.Is(err, repository.ErrWrongPassword):
		h.Console.Println("Incorrect password. Please try again.")
		return
	case err != nil:
		logrus.Error(err)
		return
	}

	h.Console.Printf("Login successful! Welcome, %s! Your user class is: %s\n", user.Name, user.Role)
	h.dispatch(user)
}

// dispatch parses the stored role tag and hands the session over to
// exactly one of the two role flows. An unrecognized tag is reported
// and the session returns to the top menu.
func (h *AuthHandler) dispatch(user *ds.User) {
	r, err := role.Parse(user.Role)
	if err != nil {
		logrus.Warn(err)
		h.Console.Println("Invalid user class.")
		return
	}

	log := logrus.WithFields(logrus.Fields{
		"session": uuid.NewString(),
		"login":   user.Login,
		"role":    r.String(),
	})
	log.Info("session dispatched")

	inventory := h.NewInventory()
	switch r {
	case role.Customer:
		NewCustomerHandler(user, inventory, h.Directory, h.Console).Run()
	case role.WarehouseManager:
		NewManagerHandler(inventory, h.Console).Run()
	}

	log.Info("session ended")
}
