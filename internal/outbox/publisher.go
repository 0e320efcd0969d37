package outbox

import (
	"context"
	"errors"
	"fmt"
	"github.com/ThreeDotsLabs/watermill"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/deepak-5656/wanderease/internal/entities"
	"github.com/deepak-5656/wanderease/internal/interfaces/message/events"
	"github.com/deepak-5656/wanderease/internal/observability"
)

// Topic is the outbox table the forwarder drains into Redis streams.
const Topic = "events_to_forward"

var ErrNoTransaction = errors.New("outbox publishing requires a transaction in context")

// NewPublisher writes messages into the outbox table through tx, so they are
// committed or rolled back together with the rest of the transaction.
func NewPublisher(
	tx watermillSQL.ContextExecutor,
	logger watermill.LoggerAdapter,
) (message.Publisher, error) {
	publisher, err := watermillSQL.NewPublisher(
		tx,
		watermillSQL.PublisherConfig{
			SchemaAdapter: watermillSQL.DefaultPostgreSQLSchema{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	var pub message.Publisher = forwarder.NewPublisher(publisher, forwarder.PublisherConfig{
		ForwarderTopic: Topic,
	})
	pub = observability.PublisherWithTracing{Publisher: pub}
	pub = CorrelationPublisherDecorator{Publisher: pub}

	return pub, nil
}

// EventPublisher publishes domain events through the outbox of the
// transaction found in context.
type EventPublisher struct {
	getter *trmsqlx.CtxGetter
	logger watermill.LoggerAdapter
}

func NewEventPublisher(getter *trmsqlx.CtxGetter, logger watermill.LoggerAdapter) *EventPublisher {
	return &EventPublisher{
		getter: getter,
		logger: logger,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event entities.Event) error {
	tr := p.getter.DefaultTrOrDB(ctx, nil)
	if tr == nil {
		return ErrNoTransaction
	}

	publisher, err := NewPublisher(tr, p.logger)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}

	eb, err := events.NewEventBus(publisher, p.logger)
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}

	if err := eb.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish %T: %w", event, err)
	}

	return nil
}
