package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/pokeshop/internal/cfg"
	v1Grpc "github.com/DRSN-tech/pokeshop/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/pokeshop/internal/delivery/v1/http"
	"github.com/DRSN-tech/pokeshop/internal/infrastructure/kafka"
	"github.com/DRSN-tech/pokeshop/internal/repository/memory"
	"github.com/DRSN-tech/pokeshop/internal/repository/pgdb"
	"github.com/DRSN-tech/pokeshop/internal/repository/redis"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/clients"
	"github.com/DRSN-tech/pokeshop/pkg/closer"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/jitter"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/DRSN-tech/pokeshop/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	connectAttempts    = 5
	connectBaseBackoff = 500 * time.Millisecond
	connectMaxBackoff  = 5 * time.Second
	topicTimeout       = 10 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp connects the storage backend, rehydrates shopper state and builds
// both servers. Resources acquired before a failure are released.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(0),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := a.init(ctx); err != nil {
		if cErr := a.closer.Close(ctx); cErr != nil {
			logger.Warnf("cleanup after failed start: %v", cErr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init(ctx context.Context) error {
	kv, err := a.initKVRepo(ctx)
	if err != nil {
		return err
	}

	favouritesStorage := usecase.NewJSONStorage[[]int64](kv, a.logger).WithTimeout(a.cfg.Storage.Timeout)
	bagStorage := usecase.NewJSONStorage[map[string]int](kv, a.logger).WithTimeout(a.cfg.Storage.Timeout)

	favourites := usecase.NewFavourites(ctx, favouritesStorage, a.cfg.Storage.FavouritesKey, a.logger)
	bag := usecase.NewBag(ctx, bagStorage, a.cfg.Storage.CartKey, a.logger)
	a.logger.Infof("state rehydrated: %d favourite(s), %d bag line(s)", len(favourites.IDs()), len(bag.Snapshot()))

	storefrontUC := usecase.NewStorefrontUC(
		memory.NewStaticCatalogRepo(),
		favourites,
		bag,
		a.initProducer(),
		a.logger,
	)

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	a.grpcSrv.RegisterServices()
	a.closer.Add(a.grpcSrv.Stop)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(storefrontUC, a.cfg.Storefront)

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add(a.httpSrv.Stop)

	return nil
}

func (a *App) initKVRepo(ctx context.Context) (usecase.KeyValueRepository, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageMemory:
		a.logger.Warnf("using in-memory storage, state is lost on restart")
		return memory.NewKVRepo(), nil

	case config.StorageRedis:
		client := clients.NewRedisClient(a.cfg.Redis)
		a.closer.Add(client.Close)

		if err := connectWithRetry(ctx, a.logger, "redis", client.Ping); err != nil {
			return nil, err
		}
		a.logger.Infof("connected to redis at %s", a.cfg.Redis.Addr)

		return redis.NewKVRepo(client, a.cfg.Redis), nil

	case config.StoragePostgres:
		var db *postgres.PgDatabase
		err := connectWithRetry(ctx, a.logger, "postgres", func(ctx context.Context) error {
			var err error
			db, err = postgres.Connect(ctx, a.cfg.Db)
			return err
		})
		if err != nil {
			return nil, err
		}
		a.closer.Add(db.Close)

		if err := db.RunMigrations(a.logger); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.logger.Infof("connected to postgres at %s:%s", a.cfg.Db.Host, a.cfg.Db.Port)

		return pgdb.NewKVRepo(db.Pool), nil

	default:
		return nil, fmt.Errorf("%w: %q", e.ErrUnknownStorageBackend, a.cfg.Storage.Backend)
	}
}

// initProducer falls back to a no-op producer when kafka is not configured.
func (a *App) initProducer() usecase.EventProducer {
	if a.cfg.Kafka == nil {
		a.logger.Infof("KAFKA_BROKERS not set, activity events are disabled")
		return usecase.NopProducer{}
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		a.logger.Warnf("failed to ensure topic %s: %v", a.cfg.Kafka.Topic, err)
	}
	a.closer.Add(producer.Close)

	return producer
}

// Run serves until a signal arrives or a server fails, then shuts down.
func (a *App) Run() error {
	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	a.grpcSrv.MarkServing()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("application shutdown complete")
	return appErr
}

// connectWithRetry calls connect until it succeeds, ctx ends or attempts run out.
func connectWithRetry(ctx context.Context, log logger.Logger, name string, connect func(context.Context) error) error {
	var err error
	for attempt := 0; attempt < connectAttempts; attempt++ {
		if err = connect(ctx); err == nil {
			return nil
		}

		if attempt == connectAttempts-1 {
			break
		}

		wait := jitter.ExponentialBackoff(connectBaseBackoff, connectMaxBackoff, attempt, jitter.DefaultJitter)
		log.Warnf("%s unavailable (attempt %d/%d), retrying in %s: %v", name, attempt+1, connectAttempts, wait, err)

		select {
		case <-ctx.Done():
			return e.Wrap(name, ctx.Err())
		case <-time.After(wait):
		}
	}

	return e.Wrap(name, err)
}
