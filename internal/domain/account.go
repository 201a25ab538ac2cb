package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type AccountID string

type Account struct {
	ID      AccountID
	Balance int32
}

func ParseAccountID(raw string) (AccountID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse account id %q: %w", raw, ErrInvalidRequest)
	}
	if id == uuid.Nil {
		return "", fmt.Errorf("account id is nil: %w", ErrInvalidRequest)
	}

	return AccountID(id.String()), nil
}

func (id AccountID) String() string {
	return string(id)
}

func (id AccountID) IsZero() bool {
	return id == ""
}
