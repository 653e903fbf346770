package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/aqua-plant/internal/core/domain"
	"github.com/niksmo/aqua-plant/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) ProduceSync(
	ctx context.Context, rs ...*kgo.Record,
) kgo.ProduceResults {
	args := m.Called(ctx, rs)
	return args.Get(0).(kgo.ProduceResults)
}

func (m *MockClient) Close() {
	m.Called()
}

type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(v any) ([]byte, error) {
	args := m.Called(v)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func testEvent() domain.CartEvent {
	return domain.CartEvent{
		EventID:    uuid.MustParse("5b0c3a1c-52a3-4ad6-9a2c-5e0c0cf7e1f4"),
		Kind:       domain.CartEventAdded,
		PlantID:    4,
		Quantity:   2,
		TotalItems: 3,
		OccurredAt: time.Date(2025, 5, 17, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewCartEventsProducer(t *testing.T) {
	t.Run("TooFewOpts", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = NewCartEventsProducer(ProducerEncoderOpt(new(MockEncoder)))
		})
	})

	t.Run("NilEncoder", func(t *testing.T) {
		_, err := NewCartEventsProducer(
			ProducerWithClientOpt(new(MockClient)),
			ProducerEncoderOpt(nil),
		)
		assert.Error(t, err)
	})
}

func TestCartEventsProducerPublish(t *testing.T) {
	t.Run("Produced", func(t *testing.T) {
		cl := new(MockClient)
		enc := new(MockEncoder)
		p, err := NewCartEventsProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		evt := testEvent()
		enc.On("Encode", schema.CartEventV1{
			EventID:    evt.EventID.String(),
			Kind:       "added",
			PlantID:    4,
			Quantity:   2,
			TotalItems: 3,
			OccurredAt: evt.OccurredAt,
		}).Return([]byte("encoded"), nil)
		cl.On("ProduceSync", mock.Anything, mock.MatchedBy(
			func(rs []*kgo.Record) bool {
				return len(rs) == 1 &&
					string(rs[0].Key) == "4" &&
					string(rs[0].Value) == "encoded"
			},
		)).Return(kgo.ProduceResults{{}})

		require.NoError(t, p.PublishCartEvent(t.Context(), evt))
		cl.AssertExpectations(t)
		enc.AssertExpectations(t)
	})

	t.Run("EncodeError", func(t *testing.T) {
		cl := new(MockClient)
		enc := new(MockEncoder)
		p, err := NewCartEventsProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		errEncode := errors.New("bad value")
		enc.On("Encode", mock.Anything).Return(nil, errEncode)

		err = p.PublishCartEvent(t.Context(), testEvent())
		assert.ErrorIs(t, err, errEncode)
		cl.AssertNotCalled(t, "ProduceSync", mock.Anything, mock.Anything)
	})

	t.Run("ProduceError", func(t *testing.T) {
		cl := new(MockClient)
		enc := new(MockEncoder)
		p, err := NewCartEventsProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(enc),
		)
		require.NoError(t, err)

		errBroker := errors.New("not enough replicas")
		enc.On("Encode", mock.Anything).Return([]byte("encoded"), nil)
		cl.On("ProduceSync", mock.Anything, mock.Anything).
			Return(kgo.ProduceResults{{Err: errBroker}})

		err = p.PublishCartEvent(t.Context(), testEvent())
		assert.ErrorIs(t, err, errBroker)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		p, err := NewCartEventsProducer(
			ProducerWithClientOpt(new(MockClient)),
			ProducerEncoderOpt(new(MockEncoder)),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		assert.ErrorIs(t, p.PublishCartEvent(ctx, testEvent()), context.Canceled)
	})

	t.Run("Close", func(t *testing.T) {
		cl := new(MockClient)
		cl.On("Close").Once()
		p, err := NewCartEventsProducer(
			ProducerWithClientOpt(cl),
			ProducerEncoderOpt(new(MockEncoder)),
		)
		require.NoError(t, err)

		p.Close()
		cl.AssertExpectations(t)
	})
}
