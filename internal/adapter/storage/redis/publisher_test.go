package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lnledger/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewPublisher(client)
	ctx := context.Background()

	sub := client.Subscribe(ctx, TransactionChannel)
	defer sub.Close()
	// Wait for the subscription before publishing.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	event := domain.TransactionEvent{
		TransactionID: "tx-1",
		InvoiceID:     "inv-1",
		WalletID:      "wallet-1",
		Status:        domain.StatusSettled,
		IsPaid:        true,
		Event:         domain.EventSettled,
	}
	require.NoError(t, pub.Publish(ctx, event))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, TransactionChannel, msg.Channel)

		var got domain.TransactionEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, event, got)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestPublisher_Publish_NoSubscribers(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewPublisher(client)

	// Broadcast with nobody listening is not an error; there is no replay.
	err := pub.Publish(context.Background(), domain.TransactionEvent{
		TransactionID: "tx-1",
		WalletID:      "wallet-1",
		Status:        domain.StatusCancelled,
		Event:         domain.EventCancelled,
	})
	assert.NoError(t, err)
}

func TestPublisher_Publish_ConnectionError(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewPublisher(client)

	s.Close()

	err := pub.Publish(context.Background(), domain.TransactionEvent{TransactionID: "tx-1"})
	assert.Error(t, err)
}
