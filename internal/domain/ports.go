package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quintans/bank-account/internal/domain/entity"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrEntityExists   = errors.New("entity already exists")
)

type AccountService interface {
	Create(ctx context.Context, cmd CreateAccountCommand) (uuid.UUID, error)
	Credit(ctx context.Context, id uuid.UUID, cmd MoneyCommand) (AccountDTO, error)
	Debit(ctx context.Context, id uuid.UUID, cmd MoneyCommand) (AccountDTO, error)
	Balance(ctx context.Context, id uuid.UUID) (AccountDTO, error)
}

type CreateAccountCommand struct {
	Owner string `json:"owner"`
	Kind  string `json:"kind,omitempty"`
}

type MoneyCommand struct {
	Amount decimal.Decimal `json:"amount"`
}

type AccountDTO struct {
	ID      uuid.UUID       `json:"id"`
	Owner   string          `json:"owner,omitempty"`
	Kind    entity.Kind     `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

func ToAccountDTO(acc entity.Accounter) AccountDTO {
	return AccountDTO{
		ID:      acc.GetID(),
		Owner:   acc.GetOwner(),
		Kind:    acc.GetKind(),
		Balance: acc.Balance(),
	}
}

// AccountRepository owns the accounts and serializes access to each one.
type AccountRepository interface {
	New(ctx context.Context, acc entity.Accounter) error
	// Exec runs do while holding the account exclusively.
	Exec(ctx context.Context, id uuid.UUID, do func(entity.Accounter) error) error
}
