package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReturnsEvent(t *testing.T) {
	ch := make(chan Event[string], 1)
	ch <- Event[string]{Type: CreatedEvent, Payload: "entry"}

	msg := ListenCmd(context.Background(), ch)()
	event, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "entry", event.Payload)
}

func TestListenCmd_StopsOnCancelOrClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Nil(t, ListenCmd(ctx, make(chan Event[int]))())

	closed := make(chan Event[int])
	close(closed)
	require.Nil(t, ListenCmd(context.Background(), closed)())
}

func TestContinuousListener_DeliversInOrder(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	listener := NewContinuousListener[int](context.Background(), broker)
	broker.Publish(CreatedEvent, 1)
	broker.Publish(UpdatedEvent, 2)
	broker.Publish(DeletedEvent, 3)

	for i, want := range []EventType{CreatedEvent, UpdatedEvent, DeletedEvent} {
		event, ok := listener.Listen()().(Event[int])
		require.True(t, ok)
		require.Equal(t, i+1, event.Payload)
		require.Equal(t, want, event.Type)
	}
}
