package main

import (
	"log"

	"github.com/joho/godotenv"

	"shop/internal/app/config"
	"shop/internal/app/ds"
	"shop/internal/app/storage"
)

// Seeds the data files with a small sample set so the shop can be
// tried out without registering everything by hand.
func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	products := []*ds.Product{
		ds.NewProduct(1, "Widget", 10, 2.50),
		ds.NewProduct(2, "Gadget", 25, 9.99),
		ds.NewProduct(3, "Doohickey", 5, 14.75),
	}
	if err := storage.SaveProducts(cfg.ProductsFile, products); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	users := []*ds.User{
		{Login: "alice", Password: "alice123", Role: "Customer", Name: "Alice", Surname: "Anders", Contact: "555-0101", Email: "alice@example.com"},
		{Login: "bob", Password: "bob123", Role: "WarehouseManager", Name: "Bob", Surname: "Barker", Contact: "555-0102", Email: "bob@example.com"},
	}
	if err := storage.SaveUsers(cfg.UsersFile, users); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Println("Seeding completed successfully")
}
