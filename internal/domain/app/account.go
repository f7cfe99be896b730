package app

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/quintans/bank-account/internal/domain"
	"github.com/quintans/bank-account/internal/domain/entity"
	"github.com/quintans/bank-account/shared/utils"
)

type AccountService struct {
	logger      log.FieldLogger
	repo        domain.AccountRepository
	factory     entity.AccountFactory
	defaultKind entity.Kind
}

func NewAccountService(logger log.FieldLogger, repo domain.AccountRepository, factory entity.AccountFactory, defaultKind entity.Kind) AccountService {
	if defaultKind == "" {
		defaultKind = entity.STANDARD
	}
	return AccountService{
		logger:      logger,
		repo:        repo,
		factory:     factory,
		defaultKind: defaultKind,
	}
}

func (s AccountService) withTags(ctx context.Context, method string, id uuid.UUID) log.FieldLogger {
	return utils.LogFromCtxOr(ctx, s.logger).WithFields(log.Fields{
		"method": method,
		"id":     id,
	})
}

func (s AccountService) Create(ctx context.Context, cmd domain.CreateAccountCommand) (uuid.UUID, error) {
	kind := s.defaultKind
	if cmd.Kind != "" {
		k, err := entity.ParseKind(cmd.Kind)
		if err != nil {
			return uuid.Nil, err
		}
		kind = k
	}

	id := uuid.New()
	s.withTags(ctx, "AccountService.Create", id).Infof("Creating %s account with owner: %s", kind, cmd.Owner)

	acc, err := s.factory.New(kind, id, cmd.Owner)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.New(ctx, acc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s AccountService) Credit(ctx context.Context, id uuid.UUID, cmd domain.MoneyCommand) (domain.AccountDTO, error) {
	logger := s.withTags(ctx, "AccountService.Credit", id)
	logger.Infof("Crediting money: %s", cmd.Amount)

	return s.exec(ctx, logger, id, func(acc entity.Accounter) error {
		return acc.Credit(cmd.Amount)
	})
}

func (s AccountService) Debit(ctx context.Context, id uuid.UUID, cmd domain.MoneyCommand) (domain.AccountDTO, error) {
	logger := s.withTags(ctx, "AccountService.Debit", id)
	logger.Infof("Debiting money: %s", cmd.Amount)

	return s.exec(ctx, logger, id, func(acc entity.Accounter) error {
		return acc.Debit(cmd.Amount)
	})
}

func (s AccountService) Balance(ctx context.Context, id uuid.UUID) (domain.AccountDTO, error) {
	return s.exec(ctx, s.withTags(ctx, "AccountService.Balance", id), id, nil)
}

// exec applies do, when set, and snapshots the account under the same lock.
func (s AccountService) exec(ctx context.Context, logger log.FieldLogger, id uuid.UUID, do func(entity.Accounter) error) (domain.AccountDTO, error) {
	var dto domain.AccountDTO
	err := s.repo.Exec(ctx, id, func(acc entity.Accounter) error {
		if do != nil {
			if err := do(acc); err != nil {
				return err
			}
		}
		dto = domain.ToAccountDTO(acc)
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("operation failed")
		return domain.AccountDTO{}, err
	}
	logger.Debugf("Balance is now %s", utils.NewLazyStr(dto.Balance.String))
	return dto, nil
}
