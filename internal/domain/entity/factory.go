package entity

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/quintans/faults"
)

var ErrUnknownKind = errors.New("unknown account kind")

type Kind string

const (
	STANDARD Kind = "STANDARD"
	SAVINGS  Kind = "SAVINGS"
)

// ParseKind is case insensitive. An empty string is STANDARD.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case "":
		return STANDARD, nil
	case STANDARD, SAVINGS:
		return k, nil
	}
	return "", faults.Errorf("kind '%s': %w", s, ErrUnknownKind)
}

type AccountFactory struct {
	Calculator InterestCalculator
}

func (f AccountFactory) New(kind Kind, id uuid.UUID, owner string) (Accounter, error) {
	calc := f.Calculator
	if calc == nil {
		calc = NoInterest{}
	}

	var a Accounter
	switch kind {
	case STANDARD:
		a = CreateAccount(id, owner, calc)
	case SAVINGS:
		a = CreateSavingsAccount(id, owner, calc)
	}
	if a == nil {
		return nil, faults.Errorf("kind '%s': %w", kind, ErrUnknownKind)
	}
	return a, nil
}
