package domain

import "fmt"

type Transaction struct {
	Source        AccountID
	Destination   AccountID
	Amount        int32
	Kind          TransactionKind
	CorrelationID string
	RegionID      string
	RegionHandle  uint64
	Description   string
}

func (t Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("%d: %w", t.Amount, ErrInvalidAmount)
	}
	if t.Source.IsZero() {
		return fmt.Errorf("source account is required: %w", ErrInvalidRequest)
	}

	return nil
}

// ValidateTransfer also requires a receiving account or object.
func (t Transaction) ValidateTransfer() error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Destination.IsZero() {
		return fmt.Errorf("destination account is required: %w", ErrInvalidRequest)
	}

	return nil
}

func (t Transaction) IsSelfTransfer() bool {
	return t.Source == t.Destination
}

type Transfer struct {
	Sender        Session
	Receiver      AccountID
	Amount        int32
	Kind          TransactionKind
	CorrelationID string
	RegionHandle  uint64
	Description   string
}

type Charge struct {
	Payer        Session
	Amount       int32
	Kind         TransactionKind
	RegionHandle uint64
	Description  string
}
