package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-agency/internal/events"
	"go-agency/internal/messaging/kafka"
	kafkaMock "go-agency/internal/messaging/kafka/mock"
	"go-agency/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func headerValue(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ClaimPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "o-1", RequestID: "req-1", AgencyID: "ag-1", AggregateType: "payout_period", AggregateID: "ag-1:2026-03",
				EventType: "payout_finalized", Topic: events.PayoutFinalizedTopic, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, events.PayoutFinalizedTopic, msg.Topic)
		assert.Equal(t, "ag-1:2026-03", string(msg.Key))
		assert.Equal(t, "payout_finalized", headerValue(msg, "event_type"))
		assert.Equal(t, "req-1", headerValue(msg, "request_id"))
		assert.Equal(t, "ag-1", headerValue(msg, "agency_id"))
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"bad": true}}

		repo.EXPECT().ClaimPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "bad", Topic: "t", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "good", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("claim error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.Error(t, err)
	})
}
