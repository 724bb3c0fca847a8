package users

import (
	"errors"
	"fmt"
)

type Service interface {
	ListUsers() ([]User, error)
	GetUser(id ID) (User, error)
	CreateUser(req UserRequest) (User, error)
	UpdateUser(id ID, req UserRequest) (User, error)
	DeleteUser(id ID) error
}

// Events is notified after a mutation has been committed.
type Events interface {
	UserCreated(u User)
	UserUpdated(u User)
	UserDeleted(id ID)
}

type service struct {
	users  Repository
	events Events
}

// UserRequest carries the raw fields of a create or update. Values are
// trimmed and validated by the service.
type UserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewService(users Repository, events Events) Service {
	if events == nil {
		events = nopEvents{}
	}
	return &service{users: users, events: events}
}

func (svc *service) ListUsers() ([]User, error) {
	users, err := svc.users.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (svc *service) GetUser(id ID) (User, error) {
	return svc.users.FindByID(id)
}

func (svc *service) CreateUser(req UserRequest) (User, error) {
	user, err := ValidateUser(req.Name, req.Username, req.Email)
	if err != nil {
		return User{}, err
	}

	user.ID = nextID()
	if err := svc.users.Insert(user); err != nil {
		return User{}, storeError("create user", err)
	}

	svc.events.UserCreated(user)
	return user, nil
}

func (svc *service) UpdateUser(id ID, req UserRequest) (User, error) {
	if _, err := svc.users.FindByID(id); err != nil {
		return User{}, err
	}

	user, err := ValidateUser(req.Name, req.Username, req.Email)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	if err := svc.users.Replace(user); err != nil {
		return User{}, storeError("update user", err)
	}

	svc.events.UserUpdated(user)
	return user, nil
}

func (svc *service) DeleteUser(id ID) error {
	if err := svc.users.Delete(id); err != nil {
		return storeError("delete user", err)
	}

	svc.events.UserDeleted(id)
	return nil
}

// storeError passes domain errors through untouched and wraps anything else.
func storeError(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

type nopEvents struct{}

func (nopEvents) UserCreated(User) {}
func (nopEvents) UserUpdated(User) {}
func (nopEvents) UserDeleted(ID)   {}
