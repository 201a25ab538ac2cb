package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
)

var ErrObjectNotFound = errors.New("object not found")

// Objects indexes scene objects by id and by region-local id.
type Objects struct {
	mu      sync.RWMutex
	byID    map[string]domain.SceneObject
	byLocal map[uint32]string
}

var _ ports.ObjectLocator = (*Objects)(nil)

func NewObjects() *Objects {
	return &Objects{
		byID:    map[string]domain.SceneObject{},
		byLocal: map[uint32]string{},
	}
}

func (o *Objects) Put(object domain.SceneObject) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if old, ok := o.byID[object.ID]; ok && old.LocalID != 0 {
		delete(o.byLocal, old.LocalID)
	}
	o.byID[object.ID] = object
	if object.LocalID != 0 {
		o.byLocal[object.LocalID] = object.ID
	}
}

func (o *Objects) Delete(objectID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if old, ok := o.byID[objectID]; ok {
		delete(o.byLocal, old.LocalID)
		delete(o.byID, objectID)
	}
}

func (o *Objects) FindObject(ctx context.Context, objectID string) (domain.SceneObject, error) {
	if err := ctx.Err(); err != nil {
		return domain.SceneObject{}, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	object, ok := o.byID[objectID]
	if !ok {
		return domain.SceneObject{}, fmt.Errorf("find object %s: %w", objectID, ErrObjectNotFound)
	}
	return object, nil
}

func (o *Objects) FindObjectByLocalID(ctx context.Context, localID uint32) (domain.SceneObject, error) {
	if err := ctx.Err(); err != nil {
		return domain.SceneObject{}, err
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	id, ok := o.byLocal[localID]
	if !ok {
		return domain.SceneObject{}, fmt.Errorf("find object %d: %w", localID, ErrObjectNotFound)
	}
	return o.byID[id], nil
}
