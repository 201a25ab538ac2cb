package memory

import (
	"context"
	"fmt"

	"github.com/bnema/currency-gateway/internal/domain"
)

// World bundles the in-memory collaborators a simulator exposes to the
// gateway and keeps the session directory in step with connect events.
type World struct {
	Sessions *Directory
	Objects  *Objects
	Users    *Users
	Sales    *Sales
	Events   *Events
}

func NewWorld() *World {
	objects := NewObjects()

	return &World{
		Sessions: NewDirectory(),
		Objects:  objects,
		Users:    NewUsers(),
		Sales:    NewSales(objects),
		Events:   NewEvents(),
	}
}

// Connect registers the session and then announces the new client.
func (w *World) Connect(ctx context.Context, session domain.Session) error {
	if err := w.Sessions.Add(session); err != nil {
		return fmt.Errorf("connect client: %w", err)
	}

	w.Events.NewClient(ctx, session)
	return nil
}

// Disconnect announces the close while the session is still resolvable.
func (w *World) Disconnect(ctx context.Context, id domain.AccountID) bool {
	if _, err := w.Sessions.ResolveSession(ctx, id); err != nil {
		return false
	}

	w.Events.ClientClosed(ctx, id)
	return w.Sessions.Remove(id)
}
