package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	users "github.com/jimiolaniyan/gousers"
	"github.com/jimiolaniyan/gousers/auth"
)

func main() {
	cfg, err := parseConfig(os.Environ())
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	handler, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newHandler builds the full middleware chain around the user routes.
func newHandler(cfg config, logger *zap.Logger) (http.Handler, error) {
	key, err := cfg.apiKey()
	if err != nil {
		return nil, err
	}

	svc := users.NewService(users.NewUserRepository(), users.NewLogEvents(logger))

	var h http.Handler = users.NewRouter(svc, logger)
	h = auth.RequireAPIKey(h, auth.NewVerifier(key), logger, "/health")
	h = users.Recover(h, logger)
	h = users.LogRequests(h, logger)
	return h, nil
}
