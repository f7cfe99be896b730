package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/quintans/faults"
	"github.com/quintans/toolkit/latch"
	log "github.com/sirupsen/logrus"

	"github.com/quintans/bank-account/internal/domain/app"
	"github.com/quintans/bank-account/internal/domain/entity"
	"github.com/quintans/bank-account/internal/infra/controller"
	"github.com/quintans/bank-account/internal/infra/gateway/memory"
)

type Config struct {
	ApiPort         int           `env:"API_PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DefaultKind     string        `env:"DEFAULT_KIND" envDefault:"STANDARD"`
}

// NewServer wires the account service into an echo instance without starting it.
func NewServer(cfg *Config, logger log.FieldLogger) (*echo.Echo, error) {
	kind, err := entity.ParseKind(cfg.DefaultKind)
	if err != nil {
		return nil, faults.Errorf("DEFAULT_KIND: %w", err)
	}

	// Repository
	accRepo := memory.NewAccountRepository()

	// Services
	accSvc := app.NewAccountService(logger, accRepo, entity.AccountFactory{Calculator: entity.NoInterest{}}, kind)

	// controllers
	rest := controller.NewRestController(logger, accSvc)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	rest.Register(e)

	return e, nil
}

func Setup(cfg *Config, logger *log.Logger) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("%+v", faults.Wrap(err))
	}
	logger.SetLevel(level)

	e, err := NewServer(cfg, logger)
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	ltx := latch.NewCountDownLatch()
	ctx, cancel := context.WithCancel(context.Background())

	// rest server
	ltx.Add(1)
	go func() {
		startRestServer(ctx, logger, e, cfg.ApiPort, cfg.ShutdownTimeout)
		ltx.Done()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()
	ltx.WaitWithTimeout(cfg.ShutdownTimeout + time.Second)
}

func startRestServer(ctx context.Context, logger log.FieldLogger, e *echo.Echo, port int, timeout time.Duration) {
	go func() {
		<-ctx.Done()
		c, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := e.Shutdown(c); err != nil {
			logger.Fatal(err)
		}
	}()

	// Start server
	address := fmt.Sprintf(":%d", port)
	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Error("failing shutting down the server")
	} else {
		logger.Info("shutting down the server")
	}
}
