package repository

import (
	"strings"

	"github.com/sirupsen/logrus"

	"shop/internal/app/ds"
	"shop/internal/app/dto"
	"shop/internal/app/storage"
)

// Directory is the in-memory account collection backed by a text file.
type Directory struct {
	path  string
	users []*ds.User
}

// NewDirectory loads the accounts from file. A read failure is only
// logged; the directory starts with whatever loaded.
func NewDirectory(path string) *Directory {
	users, err := storage.LoadUsers(path)
	if err != nil {
		logrus.Errorf("error loading user data from file: %v", err)
	}
	return &Directory{
		path:  path,
		users: users,
	}
}

// GetUserByLogin scans the directory for the given login name.
func (d *Directory) GetUserByLogin(login string) (*ds.User, error) {
	for _, u := range d.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, ErrUnknownLogin
}

// Register creates a new account. The login name must be free.
// The updated directory is written back to file right away.
func (d *Directory) Register(req dto.RegisterRequest) (*ds.User, error) {
	if _, err := d.GetUserByLogin(req.Login); err == nil {
		return nil, ErrLoginTaken
	}

	user := &ds.User{
		Login:    req.Login,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
		Surname:  req.Surname,
		Contact:  req.Contact,
		Email:    req.Email,
	}
	d.users = append(d.users, user)

	if err := d.Save(); err != nil {
		logrus.Errorf("error saving user data to file: %v", err)
	}
	return user, nil
}

// Authenticate checks login and password with an exact string
// comparison, matching the stored plaintext records.
func (d *Directory) Authenticate(login, password string) (*ds.User, error) {
	user, err := d.GetUserByLogin(login)
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// UpdateProfile replaces the four mutable account fields. Any empty
// field or an email without '@' fails the whole update with no
// partial application.
func (d *Directory) UpdateProfile(user *ds.User, upd dto.ProfileUpdate) error {
	if upd.Name == "" || upd.Surname == "" || upd.Contact == "" || !strings.Contains(upd.Email, "@") {
		return ErrInvalidProfile
	}

	user.Name = upd.Name
	user.Surname = upd.Surname
	user.Contact = upd.Contact
	user.Email = upd.Email
	return nil
}

// Users returns all accounts in insertion order.
func (d *Directory) Users() []*ds.User {
	return d.users
}

// Save overwrites the account file with the current directory.
func (d *Directory) Save() error {
	return storage.SaveUsers(d.path, d.users)
}
