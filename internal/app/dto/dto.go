package dto

// ============ Users ============

type RegisterRequest struct {
	Login    string
	Password string
	Role     string
	Name     string
	Surname  string
	Contact  string
	Email    string
}

// ProfileUpdate carries the four mutable account fields. The update
// is applied all-or-nothing.
type ProfileUpdate struct {
	Name    string
	Surname string
	Contact string
	Email   string
}
