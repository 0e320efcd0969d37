package message

import (
	"fmt"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/deepak-5656/wanderease/internal/interfaces/message/events"
	"github.com/deepak-5656/wanderease/internal/observability"
	"time"
)

// PoisonQueueTopic receives messages that still fail after all retries.
const PoisonQueueTopic = "poison_queue"

func NewRouter(
	watermillLogger watermill.LoggerAdapter,
	eventHandler *events.Handler,
	eventProcessorConfig cqrs.EventProcessorConfig,
	poisonQueuePublisher message.Publisher,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	poisonQueue, err := middleware.PoisonQueue(poisonQueuePublisher, PoisonQueueTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create poison queue middleware: %w", err)
	}

	initMiddlewares(watermillLogger, router, poisonQueue)

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event processor: %w", err)
	}

	err = eventProcessor.AddHandlers(eventHandler.Handlers()...)
	if err != nil {
		return nil, fmt.Errorf("failed to add event handlers: %w", err)
	}

	return router, nil
}

func initMiddlewares(
	watermillLogger watermill.LoggerAdapter,
	router *message.Router,
	poisonQueue message.HandlerMiddleware,
) {
	router.AddMiddleware(observability.TracingMiddleware)
	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)
	router.AddMiddleware(events.MetricsMiddleware)
	router.AddMiddleware(poisonQueue)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	// runs inside Retry so malformed payloads are dropped instead of retried
	router.AddMiddleware(events.SkipMalformedMessagesMiddleware)
}
