package memory

import (
	"context"
	"sync"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/bnema/currency-gateway/internal/ports"
)

// SaleTypeOriginal hands the object itself to the buyer; other sale types
// leave the scene object untouched.
const SaleTypeOriginal int32 = 1

type Sale struct {
	Buyer    domain.AccountID
	ObjectID string
	SaleType int32
	Price    int32
}

// Sales completes object purchases against an Objects store.
type Sales struct {
	objects *Objects

	mu    sync.Mutex
	sales []Sale
}

var _ ports.ObjectSales = (*Sales)(nil)

func NewSales(objects *Objects) *Sales {
	return &Sales{objects: objects}
}

func (s *Sales) Deliver(ctx context.Context, buyer domain.Session, object domain.SceneObject, saleType int32) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if saleType == SaleTypeOriginal && s.objects != nil {
		object.OwnerID = buyer.AccountID
		object.ForSale = false
		s.objects.Put(object)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, Sale{
		Buyer:    buyer.AccountID,
		ObjectID: object.ID,
		SaleType: saleType,
		Price:    object.SalePrice,
	})

	return nil
}

func (s *Sales) Sales() []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sale(nil), s.sales...)
}
