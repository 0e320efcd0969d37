package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/deepak-5656/wanderease/internal/entities"
	"github.com/deepak-5656/wanderease/internal/interfaces/message/events"
	"github.com/deepak-5656/wanderease/internal/interfaces/message/events/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	hostInbox := mocks.NewMockHostInbox(ctrl)

	handler := events.NewHandler(hostInbox)

	names := make([]string, 0)
	for _, h := range handler.Handlers() {
		names = append(names, h.HandlerName())
	}
	assert.ElementsMatch(t, []string{
		"host_inbox.on_booking_requested",
		"host_inbox.on_booking_confirmed",
		"host_inbox.on_booking_cancelled",
		"audit.on_booking_cancelled",
	}, names)

	requested := &entities.BookingRequested_v1{
		Header:    entities.NewEventHeader("requested", uuid.New()),
		BookingID: uuid.New(),
		OwnerID:   uuid.New(),
	}

	hostInbox.EXPECT().OnBookingRequested(gomock.Any(), requested).Return(nil)

	err := handler.HostInboxOnBookingRequestedHandler().Handle(context.Background(), requested)
	require.NoError(t, err)

	cancelled := &entities.BookingCancelled_v1{
		Header:      entities.NewEventHeader("cancelled", uuid.New()),
		BookingID:   uuid.New(),
		CancelledBy: "guest",
	}

	hostInbox.EXPECT().OnBookingCancelled(gomock.Any(), cancelled).Return(errors.New("redis unavailable"))

	err = handler.HostInboxOnBookingCancelledHandler().Handle(context.Background(), cancelled)
	assert.Error(t, err)

	err = handler.AuditBookingCancelledHandler().Handle(context.Background(), cancelled)
	assert.NoError(t, err)
}

func TestSkipMalformedMessagesMiddleware(t *testing.T) {
	msg := message.NewMessage(watermill.NewUUID(), []byte("{not json"))

	t.Run("malformed payload is acked", func(t *testing.T) {
		h := events.SkipMalformedMessagesMiddleware(func(msg *message.Message) ([]*message.Message, error) {
			var event entities.BookingRequested_v1
			return nil, json.Unmarshal(msg.Payload, &event)
		})

		_, err := h(msg)
		assert.NoError(t, err)
	})

	t.Run("other errors are retried", func(t *testing.T) {
		h := events.SkipMalformedMessagesMiddleware(func(msg *message.Message) ([]*message.Message, error) {
			return nil, errors.New("redis unavailable")
		})

		_, err := h(msg)
		assert.Error(t, err)
	})
}

func TestCorrelationIDMiddleware(t *testing.T) {
	msg := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	msg.Metadata.Set("correlation_id", "corr-1")

	var seen string
	h := events.CorrelationIDMiddleware(func(msg *message.Message) ([]*message.Message, error) {
		seen = log.CorrelationIDFromContext(msg.Context())
		return nil, nil
	})

	_, err := h(msg)
	require.NoError(t, err)
	assert.Equal(t, "corr-1", seen)
}
