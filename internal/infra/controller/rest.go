package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/quintans/bank-account/internal/domain"
	"github.com/quintans/bank-account/internal/domain/entity"
	"github.com/quintans/bank-account/shared/utils"
)

type RestController struct {
	logger     log.FieldLogger
	accService domain.AccountService
}

func NewRestController(logger log.FieldLogger, accountService domain.AccountService) RestController {
	return RestController{
		logger:     logger,
		accService: accountService,
	}
}

func (ctl RestController) Register(e *echo.Echo) {
	e.GET("/", ctl.Ping)
	e.POST("/accounts", ctl.Create)
	e.GET("/accounts/:id", ctl.Balance)
	e.POST("/accounts/:id/credit", ctl.Credit)
	e.POST("/accounts/:id/debit", ctl.Debit)
}

func (ctl RestController) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "ready to server")
}

// Create calls the service to create a new account
func (ctl RestController) Create(c echo.Context) error {
	cmd := domain.CreateAccountCommand{}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	ctx := utils.LogToCtx(c.Request().Context(), ctl.logger)
	id, err := ctl.accService.Create(ctx, cmd)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, id)
}

func (ctl RestController) Credit(c echo.Context) error {
	return ctl.move(c, ctl.accService.Credit)
}

func (ctl RestController) Debit(c echo.Context) error {
	return ctl.move(c, ctl.accService.Debit)
}

func (ctl RestController) move(c echo.Context, op func(ctx context.Context, id uuid.UUID, cmd domain.MoneyCommand) (domain.AccountDTO, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}
	cmd := domain.MoneyCommand{}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	ctx := utils.LogToCtx(c.Request().Context(), ctl.logger)
	dto, err := op(ctx, id, cmd)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func (ctl RestController) Balance(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}
	ctx := utils.LogToCtx(c.Request().Context(), ctl.logger)
	dto, err := ctl.accService.Balance(ctx, id)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func resolveError(c echo.Context, err error) (bool, error) {
	var status int
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, domain.ErrEntityNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrInsufficientBalance):
		status = http.StatusConflict
	case errors.Is(err, entity.ErrUnknownKind):
		status = http.StatusBadRequest
	default:
		return false, err
	}
	return true, c.String(status, err.Error())
}
