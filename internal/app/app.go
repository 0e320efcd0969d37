package app

import (
	"context"
	"fmt"
	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/deepak-5656/wanderease/internal/application/usecases/booking"
	"github.com/deepak-5656/wanderease/internal/application/usecases/listings"
	"github.com/deepak-5656/wanderease/internal/auth"
	"github.com/deepak-5656/wanderease/internal/config"
	"github.com/deepak-5656/wanderease/internal/interfaces/http"
	wmessage "github.com/deepak-5656/wanderease/internal/interfaces/message"
	"github.com/deepak-5656/wanderease/internal/interfaces/message/events"
	"github.com/deepak-5656/wanderease/internal/outbox"
	"github.com/deepak-5656/wanderease/internal/repository"
	"github.com/deepak-5656/wanderease/internal/worker"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"os"
	"time"

	_ "github.com/lib/pq"
)

type App struct {
	logger zerolog.Logger

	db     *sqlx.DB
	gormDB *gorm.DB

	router       *message.Router
	forwarder    *outbox.Forwarder
	srv          *http.Server
	expiryWorker *worker.PendingExpiryWorker
}

func NewApp(
	cfg config.Config,
	watermillLogger watermill.LoggerAdapter,
	db *sqlx.DB,
	redisClient *redis.Client,
) (*App, error) {
	gormDB, err := repository.NewGormDB(db.DB)
	if err != nil {
		return nil, err
	}

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	bookingsRepo := repository.NewBookingsRepo(db, trmsqlx.DefaultCtxGetter)
	listingsRepo := repository.NewListingsRepo(gormDB)
	hostInboxRepo := repository.NewHostInboxRepo(redisClient)

	eventPublisher := outbox.NewEventPublisher(trmsqlx.DefaultCtxGetter, watermillLogger)

	forwarder, err := outbox.NewForwarder(db, redisClient, watermillLogger, outbox.ForwarderConfig{})
	if err != nil {
		return nil, err
	}

	poisonQueuePublisher, err := outbox.NewRedisPublisher(redisClient, watermillLogger)
	if err != nil {
		return nil, err
	}

	router, err := wmessage.NewRouter(
		watermillLogger,
		events.NewHandler(hostInboxRepo),
		events.NewEventProcessorConfig(redisClient, watermillLogger),
		poisonQueuePublisher,
	)
	if err != nil {
		return nil, err
	}

	bookingsUsecase := booking.NewBookingsUsecase(
		bookingsRepo,
		listingsRepo,
		hostInboxRepo,
		trManager,
		eventPublisher,
	)
	listingsUsecase := listings.NewListingsUsecase(listingsRepo)

	srv := http.NewServer(
		commonHTTP.NewEcho(),
		cfg.HTTPAddr,
		bookingsUsecase,
		listingsUsecase,
		auth.NewTokens(cfg.JWTSecret),
		func(ctx context.Context) error {
			if !router.IsRunning() {
				return fmt.Errorf("router is not running")
			}
			return nil
		},
		db.PingContext,
	)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	return &App{
		logger:    logger,
		db:        db,
		gormDB:    gormDB,
		router:    router,
		forwarder: forwarder,
		srv:       srv,
		expiryWorker: worker.NewPendingExpiryWorker(
			bookingsUsecase,
			cfg.PendingBookingTTL,
			cfg.ExpirySweepInterval,
			logger,
		),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := repository.InitializeDBSchema(ctx, a.db, a.gormDB)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")
		return a.router.Run(ctx)
	})

	g.Go(func() error {
		a.logger.Info().Msg("starting outbox forwarder")
		return a.forwarder.Run(ctx)
	})

	g.Go(func() error {
		return a.expiryWorker.Run(ctx)
	})

	g.Go(func() error {
		return startWhenReady(ctx, a.router.Running(), func() error {
			a.logger.Info().Msg("router is running")

			a.logger.Info().Msg("starting server")
			return a.srv.Start()
		})
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := a.srv.Stop(shutdownCtx)
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		if err := a.forwarder.Close(); err != nil {
			a.logger.Err(err).Msg("error closing outbox forwarder")
		}

		return err
	})

	return g.Wait()
}

// startWhenReady runs start once ready is closed. It gives up without error
// when ctx ends first, e.g. because the router failed before it was running.
func startWhenReady(ctx context.Context, ready <-chan struct{}, start func() error) error {
	select {
	case <-ready:
		return start()
	case <-ctx.Done():
		return nil
	}
}
