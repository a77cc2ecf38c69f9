package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/hustler-ledger/ledger-server/api"
	"github.com/hustler-ledger/ledger-server/internal/config"
	"github.com/hustler-ledger/ledger-server/internal/events"
	"github.com/hustler-ledger/ledger-server/internal/fixture"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/operator"
	"github.com/hustler-ledger/ledger-server/internal/remote"
	"github.com/hustler-ledger/ledger-server/internal/service"
	"github.com/hustler-ledger/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var publisher events.Publisher = events.NopPublisher{}
	if len(envConfig.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(envConfig.KafkaBrokers, envConfig.KafkaTopic)
		logger.WithField("topic", envConfig.KafkaTopic).Info("publishing events to kafka")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.WithError(err).Warn("events.Close")
		}
	}()

	var store service.IdentityStore
	if envConfig.FixtureMode() {
		logger.Warn("fixture mode: serving sample data, every login succeeds")
		store = fixture.NewStore(logger)
	} else {
		dbStorage, err := storage.NewStorage(ctx, envConfig)
		if err != nil {
			logger.WithError(err).Fatal("storage.NewStorage")
			return
		}
		defer dbStorage.Close()

		delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
		delegator.Start()
		defer delegator.Stop()

		store = remote.NewStore(dbStorage.Read(), delegator, envConfig.SessionTTL, logger)
	}

	httpRest := api.Rest{
		Logger:  logger,
		Address: envConfig.ListenAddress,
		Gateway: service.NewGateway(store, publisher, logger),
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Rest.Serve")
	}

	logger.Info("ledger-server stopped")
}
