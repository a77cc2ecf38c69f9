package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/auth"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/business"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/dashboard"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/status"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/transaction"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Address string
	Gateway *service.Gateway
}

// Handler builds the gin engine with every route mounted.
func (r *Rest) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	statusHandler := status.NewHandler(r.Gateway.Mode())
	engine.Any("/status", gin.WrapF(logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler)))

	api := humagin.New(engine, envelope.Config("Hustler Ledger API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger), auth.SessionMiddleware)

	// fixture sessions travel over plain http on loopback
	secureCookies := r.Gateway.Mode() == service.ModeRemote
	auth.Register(api, r.Gateway, secureCookies)

	business.NewCreateBusinessHandler(r.Gateway).Register(api)
	business.NewListBusinessesHandler(r.Gateway).Register(api)
	transaction.NewCreateTransactionHandler(r.Gateway).Register(api)
	transaction.NewListTransactionsHandler(r.Gateway).Register(api)
	dashboard.NewHandler(r.Gateway).Register(api)

	return engine
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              r.Address,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithFields(logrus.Fields{
			"address": r.Address,
			"mode":    r.Gateway.Mode(),
		}).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
