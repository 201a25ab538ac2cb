package application

import (
	"context"
	"errors"
	"strconv"

	"github.com/bnema/currency-gateway/internal/domain"
)

const descriptionLandPurchase = "Land Purchase"

var errNilLandBuy = errors.New("land buy event is nil")

// ValidateLandBuy only checks that the buyer can afford the parcel.
func (c *Coordinator) ValidateLandBuy(ctx context.Context, buy *domain.LandBuy) error {
	if buy == nil {
		return errNilLandBuy
	}

	tx := landTransaction(buy)
	buyer, err := c.resolve(ctx, buy.Buyer)
	if err != nil {
		return c.failed(tx, "resolve", err)
	}
	if err := c.authorize(ctx, buyer, buy.Price); err != nil {
		return c.failed(tx, "authorize", err)
	}

	buy.MarkValidated()
	c.logger.Info("coordinator.land.validated", "buyer", buy.Buyer, "parcel", buy.ParcelLocalID, "price", buy.Price)

	return nil
}

// ProcessLandBuy debits a validated purchase once. Replays of an already
// committed event are no-ops.
func (c *Coordinator) ProcessLandBuy(ctx context.Context, buy *domain.LandBuy) error {
	if buy == nil {
		return errNilLandBuy
	}

	committed, err := buy.Commit(c.clock.Now(), func() error {
		if buy.Price <= 0 {
			return nil
		}
		return c.Transfer(ctx, landTransaction(buy))
	})
	if err != nil {
		return err
	}

	if !committed {
		c.logger.Debug("coordinator.land.skipped",
			"buyer", buy.Buyer,
			"parcel", buy.ParcelLocalID,
			"validated", buy.EconomyValidated(),
			"transaction_id", buy.TransactionID(),
		)
		return nil
	}

	c.logger.Info("coordinator.land.committed", "buyer", buy.Buyer, "seller", buy.Seller, "parcel", buy.ParcelLocalID, "amount", buy.AmountDebited())

	return nil
}

func landTransaction(buy *domain.LandBuy) domain.Transaction {
	return domain.Transaction{
		Source:        buy.Buyer,
		Destination:   buy.Seller,
		Amount:        buy.Price,
		Kind:          domain.KindLandSale,
		CorrelationID: strconv.FormatInt(int64(buy.ParcelLocalID), 10),
		RegionID:      buy.RegionID,
		RegionHandle:  buy.RegionHandle,
		Description:   descriptionLandPurchase,
	}
}
