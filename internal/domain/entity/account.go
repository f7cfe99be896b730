package entity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
)

var ErrInsufficientBalance = errors.New("insufficient funds in account to debit")

// InterestCalculator computes the interest owed on a balance.
// Accounts hold one but no operation calls it yet.
type InterestCalculator interface {
	Interest(balance decimal.Decimal) decimal.Decimal
}

// NoInterest never accrues anything.
type NoInterest struct{}

func (NoInterest) Interest(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// Accounter is what the rest of the module sees of an account, whatever its kind.
type Accounter interface {
	GetID() uuid.UUID
	GetOwner() string
	GetKind() Kind
	Balance() decimal.Decimal
	Credit(amount decimal.Decimal) error
	Debit(amount decimal.Decimal) error
}

// Account is not safe for concurrent use. Callers that share an account
// must serialize access themselves.
type Account struct {
	ID                 uuid.UUID `json:"id"`
	Owner              string    `json:"owner,omitempty"`
	balance            decimal.Decimal
	interestCalculator InterestCalculator
}

func NewAccount(interestCalculator InterestCalculator) *Account {
	return &Account{
		interestCalculator: interestCalculator,
	}
}

func CreateAccount(id uuid.UUID, owner string, interestCalculator InterestCalculator) *Account {
	a := NewAccount(interestCalculator)
	a.ID = id
	a.Owner = owner
	return a
}

func (a *Account) GetID() uuid.UUID {
	return a.ID
}

func (a *Account) GetOwner() string {
	return a.Owner
}

func (a *Account) GetKind() Kind {
	return STANDARD
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) InterestCalculator() InterestCalculator {
	return a.interestCalculator
}

// Credit adds amount to the balance. Any amount is accepted, including zero and negatives.
func (a *Account) Credit(amount decimal.Decimal) error {
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit subtracts amount when the balance covers it.
// On failure the balance is left untouched.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		return faults.Wrap(ErrInsufficientBalance)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// SavingsAccount behaves exactly like Account.
type SavingsAccount struct {
	Account
}

func NewSavingsAccount(interestCalculator InterestCalculator) *SavingsAccount {
	return &SavingsAccount{
		Account: *NewAccount(interestCalculator),
	}
}

func CreateSavingsAccount(id uuid.UUID, owner string, interestCalculator InterestCalculator) *SavingsAccount {
	return &SavingsAccount{
		Account: *CreateAccount(id, owner, interestCalculator),
	}
}

func (s *SavingsAccount) GetKind() Kind {
	return SAVINGS
}
