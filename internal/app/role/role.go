package role

import "fmt"

// Role discriminates the two interactive flows.
type Role int

const (
	Customer Role = iota
	WarehouseManager
)

// Parse maps a stored role tag onto the closed role set.
func Parse(tag string) (Role, error) {
	switch tag {
	case "Customer":
		return Customer, nil
	case "WarehouseManager":
		return WarehouseManager, nil
	default:
		return 0, fmt.Errorf("unknown role tag %q", tag)
	}
}

func (r Role) String() string {
	switch r {
	case Customer:
		return "Customer"
	case WarehouseManager:
		return "WarehouseManager"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}
