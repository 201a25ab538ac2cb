package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
)

// Directory holds the sessions of the clients currently connected to this
// simulator. It is the only source the gateway authenticates against.
type Directory struct {
	mu       sync.RWMutex
	sessions map[domain.AccountID]domain.Session
}

var _ ports.SessionDirectory = (*Directory)(nil)

func NewDirectory() *Directory {
	return &Directory{sessions: map[domain.AccountID]domain.Session{}}
}

// Add registers session, replacing any earlier session of the same account.
func (d *Directory) Add(session domain.Session) error {
	if session.AccountID.IsZero() {
		return fmt.Errorf("add session: %w", domain.ErrInvalidRequest)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[session.AccountID] = session

	return nil
}

func (d *Directory) Remove(id domain.AccountID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.sessions[id]
	delete(d.sessions, id)
	return ok
}

// Sessions returns a snapshot ordered by account id.
func (d *Directory) Sessions() []domain.Session {
	d.mu.RLock()
	out := make([]domain.Session, 0, len(d.sessions))
	for _, session := range d.sessions {
		out = append(out, session)
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}

func (d *Directory) ResolveSession(ctx context.Context, id domain.AccountID) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	d.mu.RLock()
	session, ok := d.sessions[id]
	d.mu.RUnlock()

	if !ok {
		return domain.Session{}, fmt.Errorf("resolve session %s: %w", id, domain.ErrAccountNotFound)
	}

	return session, nil
}

func (d *Directory) Validate(ctx context.Context, id domain.AccountID, sessionID, secureSessionID string) bool {
	session, err := d.ResolveSession(ctx, id)
	if err != nil {
		return false
	}

	return session.Matches(sessionID, secureSessionID)
}
