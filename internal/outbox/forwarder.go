package outbox

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"time"
)

type ForwarderConfig struct {
	PollInterval time.Duration
}

// Forwarder moves committed outbox rows to Redis streams, keeping the
// destination topic each event was published to.
type Forwarder struct {
	logger watermill.LoggerAdapter
	fwd    *forwarder.Forwarder
}

func NewForwarder(
	db *sqlx.DB,
	rdb *redis.Client,
	logger watermill.LoggerAdapter,
	cfg ForwarderConfig,
) (*Forwarder, error) {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}

	subscriber, err := watermillSQL.NewSubscriber(
		db,
		watermillSQL.SubscriberConfig{
			SchemaAdapter:  watermillSQL.DefaultPostgreSQLSchema{},
			OffsetsAdapter: watermillSQL.DefaultPostgreSQLOffsetsAdapter{},
			PollInterval:   cfg.PollInterval,
			ResendInterval: cfg.PollInterval,
			RetryInterval:  cfg.PollInterval,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox subscriber: %w", err)
	}

	// creates the outbox tables before the first transaction writes to them
	err = subscriber.SubscribeInitialize(Topic)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize outbox: %w", err)
	}

	publisher, err := NewRedisPublisher(rdb, logger)
	if err != nil {
		return nil, err
	}

	fwd, err := forwarder.NewForwarder(subscriber, publisher,
		logger,
		forwarder.Config{
			ForwarderTopic: Topic,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create forwarder: %w", err)
	}

	return &Forwarder{
		fwd:    fwd,
		logger: logger,
	}, nil
}

// Run blocks until ctx is cancelled.
func (f *Forwarder) Run(ctx context.Context) error {
	return f.fwd.Run(ctx)
}

func (f *Forwarder) Running() chan struct{} {
	return f.fwd.Running()
}

func (f *Forwarder) Close() error {
	return f.fwd.Close()
}

func NewRedisPublisher(
	redisClient *redis.Client,
	logger watermill.LoggerAdapter,
) (message.Publisher, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis publisher: %w", err)
	}

	return publisher, nil
}
