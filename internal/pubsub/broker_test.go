package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(time.Second):
		require.FailNow(t, "timeout waiting for event")
	}
	return Event[T]{}
}

func TestBroker_Subscribe(t *testing.T) {
	broker := NewBroker[[]string]()
	defer broker.Close()

	ch := broker.Subscribe(context.Background())
	broker.Publish(UpdatedEvent, []string{"hello", "world"})

	event := receive(t, ch)
	require.Equal(t, []string{"hello", "world"}, event.Payload)
	require.Equal(t, UpdatedEvent, event.Type)
	require.False(t, event.Timestamp.IsZero())
}

func TestBroker_FanOut(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	subs := []<-chan Event[int]{
		broker.Subscribe(context.Background()),
		broker.Subscribe(context.Background()),
		broker.Subscribe(context.Background()),
	}
	require.Equal(t, 3, broker.SubscriberCount())

	broker.Publish(CreatedEvent, 7)
	for _, ch := range subs {
		require.Equal(t, 7, receive(t, ch).Payload)
	}
}

func TestBroker_ContextCancelUnsubscribes(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	require.Equal(t, 1, broker.SubscriberCount())

	cancel()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_FullSubscriberDropsEvents(t *testing.T) {
	broker := NewBrokerWithBuffer[int](2)
	defer broker.Close()

	ch := broker.Subscribe(context.Background())
	for i := range 5 {
		broker.Publish(UpdatedEvent, i)
	}

	require.Equal(t, uint64(3), broker.Dropped())
	require.Equal(t, 0, receive(t, ch).Payload)
	require.Equal(t, 1, receive(t, ch).Payload)
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker[string]()
	ch := broker.Subscribe(context.Background())

	broker.Close()
	broker.Close()

	_, ok := <-ch
	require.False(t, ok)
	require.Equal(t, 0, broker.SubscriberCount())

	// Subscribing after close yields a closed channel; publishing is ignored.
	late := broker.Subscribe(context.Background())
	_, ok = <-late
	require.False(t, ok)
	broker.Publish(UpdatedEvent, "ignored")
}
