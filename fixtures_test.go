package users

import "testing"

func mustCreateUser(t *testing.T, svc Service, name, username, email string) User {
	t.Helper()
	u, err := svc.CreateUser(UserRequest{Name: name, Username: username, Email: email})
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

type eventsSpy struct {
	created []User
	updated []User
	deleted []ID
}

func (s *eventsSpy) UserCreated(u User) { s.created = append(s.created, u) }
func (s *eventsSpy) UserUpdated(u User) { s.updated = append(s.updated, u) }
func (s *eventsSpy) UserDeleted(id ID)  { s.deleted = append(s.deleted, id) }
