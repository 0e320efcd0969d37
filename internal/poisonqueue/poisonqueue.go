// Package poisonqueue inspects and drains the stream the router's poison
// queue middleware writes to.
package poisonqueue

import (
	"context"
	"fmt"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
)

type Message struct {
	ID       string
	StreamID string
	Topic    string
	Reason   string
}

type Handler struct {
	rdb          redis.UniversalClient
	publisher    message.Publisher
	unmarshaller redisstream.Unmarshaller
	topic        string
}

func NewHandler(rdb redis.UniversalClient, publisher message.Publisher, topic string) *Handler {
	if rdb == nil {
		panic("redis client is required")
	}
	if publisher == nil {
		panic("publisher is required")
	}

	return &Handler{
		rdb:          rdb,
		publisher:    publisher,
		unmarshaller: redisstream.DefaultMarshallerUnmarshaller{},
		topic:        topic,
	}
}

type entry struct {
	streamID string
	msg      *message.Message
}

// entries reads the stream without a consumer group, so listing it never
// acknowledges or moves anything.
func (h *Handler) entries(ctx context.Context) ([]entry, error) {
	stream, err := h.rdb.XRange(ctx, h.topic, "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", h.topic, err)
	}

	res := make([]entry, 0, len(stream))
	for _, xm := range stream {
		msg, err := h.unmarshaller.Unmarshal(xm.Values)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal stream entry %s: %w", xm.ID, err)
		}
		res = append(res, entry{streamID: xm.ID, msg: msg})
	}

	return res, nil
}

func (h *Handler) find(ctx context.Context, id string) (entry, error) {
	entries, err := h.entries(ctx)
	if err != nil {
		return entry{}, err
	}

	for _, e := range entries {
		if e.msg.UUID == id {
			return e, nil
		}
	}

	return entry{}, fmt.Errorf("message %s not found", id)
}

func (h *Handler) Preview(ctx context.Context) ([]Message, error) {
	entries, err := h.entries(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]Message, 0, len(entries))
	for _, e := range entries {
		res = append(res, Message{
			ID:       e.msg.UUID,
			StreamID: e.streamID,
			Topic:    e.msg.Metadata.Get(middleware.PoisonedTopicKey),
			Reason:   e.msg.Metadata.Get(middleware.ReasonForPoisonedKey),
		})
	}

	return res, nil
}

func (h *Handler) Remove(ctx context.Context, id string) error {
	e, err := h.find(ctx, id)
	if err != nil {
		return err
	}

	return h.delete(ctx, e)
}

// Requeue publishes the message back to the topic it was poisoned on, without
// the poison metadata, and only then drops it from the queue.
func (h *Handler) Requeue(ctx context.Context, id string) error {
	e, err := h.find(ctx, id)
	if err != nil {
		return err
	}

	topic := e.msg.Metadata.Get(middleware.PoisonedTopicKey)
	if topic == "" {
		return fmt.Errorf("message %s has no source topic", id)
	}

	requeued := e.msg.Copy()
	for _, key := range []string{
		middleware.PoisonedTopicKey,
		middleware.PoisonedHandlerKey,
		middleware.PoisonedSubscriberKey,
		middleware.ReasonForPoisonedKey,
	} {
		delete(requeued.Metadata, key)
	}

	if err := h.publisher.Publish(topic, requeued); err != nil {
		return fmt.Errorf("failed to requeue message %s: %w", id, err)
	}

	log.FromContext(ctx).
		WithField("message_uuid", id).
		WithField("topic", topic).
		Info("Requeued poisoned message")

	return h.delete(ctx, e)
}

func (h *Handler) delete(ctx context.Context, e entry) error {
	if err := h.rdb.XDel(ctx, h.topic, e.streamID).Err(); err != nil {
		return fmt.Errorf("failed to remove message %s: %w", e.msg.UUID, err)
	}

	return nil
}
