package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"lnledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// TransactionChannel is the pub/sub channel carrying transaction events.
const TransactionChannel = "lnledger:transactions"

// Publisher implements ports.Publisher over redis pub/sub. Subscribers get
// one JSON message per terminal-state transition; there is no replay.
type Publisher struct {
	client *goredis.Client
}

// NewPublisher creates a redis-backed event publisher.
func NewPublisher(client *goredis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish broadcasts a transaction event to all current subscribers.
func (p *Publisher) Publish(ctx context.Context, event domain.TransactionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transaction event: %w", err)
	}
	if err := p.client.Publish(ctx, TransactionChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish transaction event: %w", err)
	}
	return nil
}
