package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fastprodman/cardescrow/internal/api"
	"github.com/fastprodman/cardescrow/internal/feed"
	"github.com/fastprodman/cardescrow/internal/infra/logging"
	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
	"github.com/fastprodman/cardescrow/internal/infra/redisutil"
	pgprofiles "github.com/fastprodman/cardescrow/internal/repos/profiles/postgres"
	"github.com/fastprodman/cardescrow/internal/services/escrow"
	"github.com/fastprodman/cardescrow/internal/services/reputation"
	"github.com/fastprodman/cardescrow/pkg/envconf"
	"github.com/fastprodman/cardescrow/pkg/shutdownqueue"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	err = cfg.Escrow.Validate()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdownqueue.Add("db", func(context.Context) error {
		return db.Close()
	})

	opts := []escrow.Option{escrow.WithTTL(cfg.Escrow.TransactionTTL)}

	var subscriber feed.Subscriber

	if cfg.Redis.Addr != "" {
		client, rerr := redisutil.Connect(ctx, cfg.Redis)
		if rerr != nil {
			return fmt.Errorf("connect redis: %w", rerr)
		}

		shutdownqueue.Add("redis", func(context.Context) error {
			return client.Close()
		})

		rf := feed.NewRedis(client)
		opts = append(opts, escrow.WithPublisher(rf))
		subscriber = rf
	} else {
		slog.Warn("REDIS_ADDR not set, change feed disabled")
	}

	repReader, err := reputation.NewReader(pgprofiles.New(db), cfg.ReputationCache.Size, cfg.ReputationCache.TTL)
	if err != nil {
		return fmt.Errorf("reputation reader: %w", err)
	}

	opts = append(opts, escrow.WithReputationCache(repReader))

	svc := escrow.New(db, opts...)

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, api.NewHandler(svc, subscriber))

	shutdownqueue.Add("http server", func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	})

	g.Go(func() error {
		return svc.RunSweeper(gctx, cfg.Escrow.SweepInterval, cfg.Escrow.SweepBatch)
	})

	slog.Info("API started", "port", cfg.Port, "transaction_ttl", cfg.Escrow.TransactionTTL)

	// Shutdown unblocks ListenAndServe once the signal arrives or a goroutine fails.
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
