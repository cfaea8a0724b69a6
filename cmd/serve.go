package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	amqpnotifier "campaign-wizard/internal/adapter/amqp"
	"campaign-wizard/internal/adapter/credential"
	"campaign-wizard/internal/adapter/http"
	"campaign-wizard/internal/adapter/simulated"
	"campaign-wizard/internal/adapter/system"
	"campaign-wizard/internal/adapter/usecase"
	"campaign-wizard/internal/core/port"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := cfg.Auth.Validate(); err != nil {
		return err
	}

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			return fmt.Errorf("sentry.Init: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
		logger.Info("sentry initialized", slog.String("environment", cfg.Env))
	}

	kv, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	var (
		clock  = system.Clock{}
		random = system.Random{}
		ids    = system.UUIDGenerator{}
	)

	var notifier port.LaunchNotifier = simulated.NewLogNotifier(logger)
	if cfg.AMQP.Enabled() {
		n, err := amqpnotifier.Dial(cfg.AMQP, logger)
		if err != nil {
			return err
		}
		defer n.Close()
		notifier = n
	}

	accounts := credential.NewStore(kv, clock)
	launch := usecase.NewLaunchUseCase(
		kv, clock,
		simulated.NewPaymentVerifier(clock, random, cfg.Wizard.PaymentLatency, cfg.Wizard.PaymentVerifiedRatio),
		notifier, ids, cfg.Wizard, logger,
	)
	defer launch.Close()

	svc := httpadapter.Services{
		Wizard: usecase.NewWizardUseCase(kv, random, ids, logger),
		Launch: launch,
		Reset: usecase.NewPasswordResetUseCase(
			clock, random, ids,
			simulated.NewCodeDelivery(clock, cfg.Wizard.OTPSendLatency, logger),
			accounts, cfg.Wizard.OTPVerifyLatency, cfg.Wizard.ResetTTL, logger,
		),
		Accounts: accounts,
	}
	handler := httpadapter.NewHandler(svc, httpadapter.NewAuthenticator(cfg.Auth, clock), logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
