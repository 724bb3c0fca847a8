package users

import (
	"fmt"
	"sync"
)

// userRepository keeps users in memory. Usernames and emails are indexed by
// their case-folded form so uniqueness is decided under the same lock as the
// write that depends on it.
type userRepository struct {
	mu         sync.RWMutex
	users      map[ID]User
	order      []ID
	byUsername map[string]ID
	byEmail    map[string]ID
}

func NewUserRepository() Repository {
	return &userRepository{
		users:      map[ID]User{},
		byUsername: map[string]ID{},
		byEmail:    map[string]ID{},
	}
}

func (repo *userRepository) FindAll() ([]User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	all := make([]User, 0, len(repo.order))
	for _, id := range repo.order {
		all = append(all, repo.users[id])
	}
	return all, nil
}

func (repo *userRepository) FindByID(id ID) (User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if u, ok := repo.users[id]; ok {
		return u, nil
	}
	return User{}, ErrNotFound
}

func (repo *userRepository) FindByUsername(username string) (User, error) {
	return repo.findByKey(repo.byUsername, username)
}

func (repo *userRepository) FindByEmail(email string) (User, error) {
	return repo.findByKey(repo.byEmail, email)
}

func (repo *userRepository) findByKey(index map[string]ID, key string) (User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if id, ok := index[fold(key)]; ok {
		return repo.users[id], nil
	}
	return User{}, ErrNotFound
}

func (repo *userRepository) Insert(u User) error {
	if u.ID == "" {
		return fmt.Errorf("insert user: empty id")
	}

	username, email := fold(u.Username), fold(u.Email)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[u.ID]; ok {
		return fmt.Errorf("insert user: id %s already stored", u.ID)
	}
	if err := repo.verifyNotInUse(u.ID, username, email); err != nil {
		return err
	}

	repo.users[u.ID] = u
	repo.order = append(repo.order, u.ID)
	repo.byUsername[username] = u.ID
	repo.byEmail[email] = u.ID
	return nil
}

func (repo *userRepository) Replace(u User) error {
	username, email := fold(u.Username), fold(u.Email)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	old, ok := repo.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	if err := repo.verifyNotInUse(u.ID, username, email); err != nil {
		return err
	}

	delete(repo.byUsername, fold(old.Username))
	delete(repo.byEmail, fold(old.Email))

	repo.users[u.ID] = u
	repo.byUsername[username] = u.ID
	repo.byEmail[email] = u.ID
	return nil
}

func (repo *userRepository) Delete(id ID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok {
		return ErrNotFound
	}

	delete(repo.users, id)
	delete(repo.byUsername, fold(u.Username))
	delete(repo.byEmail, fold(u.Email))
	for i, v := range repo.order {
		if v == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)
			break
		}
	}
	return nil
}

// verifyNotInUse must be called with repo.mu held. self is excluded so a
// user can keep its own username and email.
func (repo *userRepository) verifyNotInUse(self ID, username, email string) error {
	if owner, ok := repo.byUsername[username]; ok && owner != self {
		return conflict(FieldUsername, "Username already exists")
	}
	if owner, ok := repo.byEmail[email]; ok && owner != self {
		return conflict(FieldEmail, "Email already exists")
	}
	return nil
}
