package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillPublisher_PublishLogin(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubsub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	messages, err := pubsub.Subscribe(ctx, LoginTopic)
	require.NoError(t, err)

	p := NewWatermillPublisher(pubsub)
	require.NoError(t, p.PublishLogin(ctx, "erd1alice"))

	select {
	case msg := <-messages:
		var event SessionEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, "erd1alice", event.Address)
		assert.False(t, event.OccurredAt.IsZero())
		assert.NotEmpty(t, msg.UUID)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for login event")
	}
}

func TestWatermillPublisher_PublishLogout(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubsub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	messages, err := pubsub.Subscribe(ctx, LogoutTopic)
	require.NoError(t, err)

	p := NewWatermillPublisher(pubsub)
	require.NoError(t, p.PublishLogout(ctx, "erd1bob"))

	select {
	case msg := <-messages:
		var event SessionEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, "erd1bob", event.Address)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for logout event")
	}
}
