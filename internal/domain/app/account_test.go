package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintans/bank-account/internal/domain"
	"github.com/quintans/bank-account/internal/domain/entity"
	"github.com/quintans/bank-account/internal/infra/gateway/memory"
	"github.com/quintans/bank-account/shared/utils"
)

func newService(t *testing.T, defaultKind entity.Kind) (AccountService, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	return NewAccountService(logger, memory.NewAccountRepository(), entity.AccountFactory{}, defaultKind), hook
}

func money(s string) domain.MoneyCommand {
	return domain.MoneyCommand{Amount: decimal.RequireFromString(s)}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, hook := newService(t, "")

	id, err := svc.Create(ctx, domain.CreateAccountCommand{Owner: "Paulo"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	dto, err := svc.Balance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, dto.ID)
	assert.Equal(t, "Paulo", dto.Owner)
	assert.Equal(t, entity.STANDARD, dto.Kind)
	assert.True(t, dto.Balance.IsZero())

	entry := hook.AllEntries()[0]
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "AccountService.Create", entry.Data["method"])
	assert.Equal(t, id, entry.Data["id"])
}

func TestCreateKinds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, entity.SAVINGS)

	id, err := svc.Create(ctx, domain.CreateAccountCommand{Owner: "Ana"})
	require.NoError(t, err)
	dto, err := svc.Balance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.SAVINGS, dto.Kind)

	id, err = svc.Create(ctx, domain.CreateAccountCommand{Owner: "Ana", Kind: "standard"})
	require.NoError(t, err)
	dto, err = svc.Balance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.STANDARD, dto.Kind)

	_, err = svc.Create(ctx, domain.CreateAccountCommand{Owner: "Ana", Kind: "gold"})
	require.ErrorIs(t, err, entity.ErrUnknownKind)
}

func TestCreditDebit(t *testing.T) {
	for _, kind := range []entity.Kind{entity.STANDARD, entity.SAVINGS} {
		t.Run(string(kind), func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newService(t, kind)
			id, err := svc.Create(ctx, domain.CreateAccountCommand{Owner: "Paulo"})
			require.NoError(t, err)

			dto, err := svc.Credit(ctx, id, money("100"))
			require.NoError(t, err)
			assert.Equal(t, "100", dto.Balance.String())

			dto, err = svc.Debit(ctx, id, money("40"))
			require.NoError(t, err)
			assert.Equal(t, "60", dto.Balance.String())

			_, err = svc.Debit(ctx, id, money("100"))
			require.ErrorIs(t, err, entity.ErrInsufficientBalance)

			dto, err = svc.Balance(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "60", dto.Balance.String())
		})
	}
}

func TestUnknownAccount(t *testing.T) {
	ctx := context.Background()
	svc, hook := newService(t, "")
	id := uuid.New()

	_, err := svc.Credit(ctx, id, money("1"))
	require.ErrorIs(t, err, domain.ErrEntityNotFound)
	_, err = svc.Debit(ctx, id, money("1"))
	require.ErrorIs(t, err, domain.ErrEntityNotFound)
	_, err = svc.Balance(ctx, id)
	require.ErrorIs(t, err, domain.ErrEntityNotFound)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, log.WarnLevel, last.Level)
}

func TestContextLoggerWins(t *testing.T) {
	svc, hook := newService(t, "")
	ctxLogger, ctxHook := test.NewNullLogger()
	ctx := utils.LogToCtx(context.Background(), ctxLogger.WithField("request", "r1"))

	_, err := svc.Create(ctx, domain.CreateAccountCommand{Owner: "Paulo"})
	require.NoError(t, err)

	assert.Empty(t, hook.AllEntries())
	require.Len(t, ctxHook.AllEntries(), 1)
	assert.Equal(t, "r1", ctxHook.LastEntry().Data["request"])
}
