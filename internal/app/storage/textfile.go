package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"shop/internal/app/ds"
)

// Line-oriented text store for the two record kinds. Both files are
// loaded wholesale and rewritten wholesale; there is no append path
// and no atomic rename. Names containing commas are not escaped.

// LoadProducts reads the product file, creating it empty if absent.
// A malformed line (wrong field count, non-numeric field) aborts the
// load: the products parsed before it are returned together with the
// error, so callers can continue best-effort.
func LoadProducts(path string) ([]*ds.Product, error) {
	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open product file: %w", err)
	}
	defer file.Close()

	products := []*ds.Product{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) != 4 {
			return products, fmt.Errorf("product line %d has %d fields, want 4", lineNo, len(parts))
		}

		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return products, fmt.Errorf("product line %d: bad id: %w", lineNo, err)
		}
		name := strings.TrimSpace(parts[1])
		quantity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return products, fmt.Errorf("product line %d: bad quantity: %w", lineNo, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return products, fmt.Errorf("product line %d: bad price: %w", lineNo, err)
		}

		products = append(products, ds.NewProduct(id, name, quantity, price))
	}
	if err := scanner.Err(); err != nil {
		return products, fmt.Errorf("could not read product file: %w", err)
	}

	return products, nil
}

// SaveProducts overwrites the product file in full.
// Fields are written with a comma-space separator, the legacy layout.
func SaveProducts(path string, products []*ds.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create product file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, p := range products {
		line := strconv.Itoa(p.ID) + ", " + p.Name + ", " +
			strconv.Itoa(p.Quantity) + ", " + strconv.FormatFloat(p.Price, 'f', -1, 64)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("could not write product file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write product file: %w", err)
	}

	logrus.Infof("products written to file: %s", path)
	return nil
}

// LoadUsers reads the account file, creating it empty if absent.
// Lines with a field count other than 7 are skipped.
func LoadUsers(path string) ([]*ds.User, error) {
	file, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open user file: %w", err)
	}
	defer file.Close()

	users := []*ds.User{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) != 7 {
			continue
		}
		users = append(users, &ds.User{
			Login:    parts[0],
			Password: parts[1],
			Role:     parts[2],
			Name:     parts[3],
			Surname:  parts[4],
			Contact:  parts[5],
			Email:    parts[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return users, fmt.Errorf("could not read user file: %w", err)
	}

	return users, nil
}

// SaveUsers overwrites the account file in full, 7 comma-separated
// fields per line.
func SaveUsers(path string, users []*ds.User) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create user file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, u := range users {
		fields := []string{u.Login, u.Password, u.Role, u.Name, u.Surname, u.Contact, u.Email}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("could not write user file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write user file: %w", err)
	}

	return nil
}
