package domain

import (
	"sync"
	"time"
)

// LandBuy is shared between the validate and commit phases of a parcel
// purchase and must be passed by pointer.
type LandBuy struct {
	Buyer         AccountID
	Seller        AccountID
	ParcelLocalID int32
	ParcelArea    int32
	Price         int32
	RegionID      string
	RegionHandle  uint64

	mu               sync.Mutex
	economyValidated bool
	transactionID    int64
	amountDebited    int32
}

func (b *LandBuy) MarkValidated() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.economyValidated = true
}

func (b *LandBuy) EconomyValidated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.economyValidated
}

func (b *LandBuy) TransactionID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.transactionID
}

func (b *LandBuy) AmountDebited() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.amountDebited
}

// Commit runs apply at most once per validated purchase. The transaction id
// is stamped before apply runs, so a failed apply is not retried by a replay.
func (b *LandBuy) Commit(now time.Time, apply func() error) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.economyValidated || b.transactionID != 0 {
		return false, nil
	}

	b.transactionID = now.Unix()
	if b.transactionID == 0 {
		b.transactionID = 1
	}

	if err := apply(); err != nil {
		return false, err
	}
	b.amountDebited = b.Price

	return true, nil
}
