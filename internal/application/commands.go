package application

import "github.com/bnema/currency-gateway/internal/domain"

// Credentials is the account id plus both session tokens a push request
// claims to act for.
type Credentials struct {
	AccountID       domain.AccountID
	SessionID       string
	SecureSessionID string
}

type UpdateBalanceCommand struct {
	Credentials
	Balance int32
}

type UserAlertCommand struct {
	Credentials
	Description string
}

type ConfirmLinkCommand struct {
	Credentials
	URI string
}

type MoneyTransferredCommand struct {
	Sender   Credentials
	Receiver domain.AccountID
	Kind     domain.TransactionKind
	ObjectID string
	Amount   int32
}

type BalanceQueryCommand struct {
	Credentials
}

type ObjectGiveMoneyCommand struct {
	ObjectID  string
	Payer     domain.AccountID
	Recipient domain.AccountID
	Amount    int32
}
