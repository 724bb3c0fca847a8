package users

import (
	"errors"

	"github.com/rs/xid"
)

// Repository holds the live users. Implementations must make Insert, Replace
// and Delete atomic with respect to each other, including the uniqueness
// checks on username and email.
type Repository interface {
	FindAll() ([]User, error)
	FindByID(id ID) (User, error)
	FindByUsername(username string) (User, error)
	FindByEmail(email string) (User, error)
	Insert(u User) error
	Replace(u User) error
	Delete(id ID) error
}

type ID string

type User struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// FieldError reports a rejected field. Kind is ErrInvalidInput or ErrConflict.
type FieldError struct {
	Kind   error
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func invalid(field, reason string) error {
	return &FieldError{Kind: ErrInvalidInput, Field: field, Reason: reason}
}

func conflict(field, reason string) error {
	return &FieldError{Kind: ErrConflict, Field: field, Reason: reason}
}

func nextID() ID {
	return ID(xid.New().String())
}

//IsValidID reports whether id could have been issued by nextID. Keep the two
// in step if the id library changes
func IsValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}
