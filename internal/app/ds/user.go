package ds

// User account record, persisted in users.txt.
// Login is the only stable identifier; Role holds the raw tag
// from the file ("Customer" or "WarehouseManager").
type User struct {
	Login    string
	Password string
	Role     string
	Name     string
	Surname  string
	Contact  string
	Email    string
}
