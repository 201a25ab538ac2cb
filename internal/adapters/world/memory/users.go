package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
)

type User struct {
	ID   domain.AccountID
	Name string
	// HomeURI is empty for users of the local grid.
	HomeURI string
}

type Users struct {
	mu    sync.RWMutex
	users map[domain.AccountID]User
}

var _ ports.UserDirectory = (*Users)(nil)

func NewUsers() *Users {
	return &Users{users: map[domain.AccountID]User{}}
}

func (u *Users) Put(user User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.users[user.ID] = user
}

// IsLocalUser treats unknown accounts as local.
func (u *Users) IsLocalUser(_ context.Context, id domain.AccountID) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.users[id]
	return !ok || user.HomeURI == ""
}

func (u *Users) HomeURI(_ context.Context, id domain.AccountID) (string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.users[id]
	if !ok || user.HomeURI == "" {
		return "", fmt.Errorf("home uri of %s: %w", id, domain.ErrAccountNotFound)
	}
	return user.HomeURI, nil
}

func (u *Users) UserName(_ context.Context, id domain.AccountID) (string, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.users[id]
	if !ok || user.Name == "" {
		return "", false
	}
	return user.Name, true
}
