package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/quintans/faults"

	"github.com/quintans/bank-account/internal/domain"
	"github.com/quintans/bank-account/internal/domain/entity"
)

type entry struct {
	mu  sync.Mutex
	acc entity.Accounter
}

// AccountRepository keeps accounts in process memory. Nothing survives a restart.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*entry
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: map[uuid.UUID]*entry{},
	}
}

func (r *AccountRepository) New(ctx context.Context, acc entity.Accounter) error {
	if err := ctx.Err(); err != nil {
		return faults.Wrap(err)
	}

	id := acc.GetID()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; ok {
		return faults.Errorf("account '%s': %w", id, domain.ErrEntityExists)
	}
	r.accounts[id] = &entry{acc: acc}
	return nil
}

func (r *AccountRepository) Exec(ctx context.Context, id uuid.UUID, do func(entity.Accounter) error) error {
	if err := ctx.Err(); err != nil {
		return faults.Wrap(err)
	}

	r.mu.RLock()
	e, ok := r.accounts[id]
	r.mu.RUnlock()
	if !ok {
		return faults.Errorf("account '%s': %w", id, domain.ErrEntityNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return do(e.acc)
}

func (r *AccountRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
