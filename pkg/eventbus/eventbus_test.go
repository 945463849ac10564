package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type pinged struct{}

func (pinged) Name() string { return "test.pinged" }

func TestBus_PublishRunsEveryListener(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := New(zap.NewNop())
	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		bus.Subscribe("test.pinged", func(ctx context.Context, e Event) error {
			calls.Add(1)
			return nil
		})
	}
	bus.Subscribe("test.pinged", func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("unexpected listener call")
		return nil
	})

	bus.Publish(context.Background(), pinged{})
	bus.Wait()

	assert.Equal(t, int32(3), calls.Load())
}

func TestBus_ListenerOutlivesRequestContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := New(zap.NewNop())
	var cancelled atomic.Bool
	bus.Subscribe("test.pinged", func(ctx context.Context, e Event) error {
		cancelled.Store(ctx.Err() != nil)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pinged{})
	bus.Wait()

	assert.False(t, cancelled.Load())
}
