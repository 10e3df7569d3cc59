package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v9"
)

var (
	_ Publisher  = (*RedisFeed)(nil)
	_ Subscriber = (*RedisFeed)(nil)
)

type RedisFeed struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

func (f *RedisFeed) Publish(ctx context.Context, events ...Event) error {
	var errs []error

	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("marshal event: %w", err))
			continue
		}

		for _, ch := range e.Channels() {
			err = f.client.Publish(ctx, ch, payload).Err()
			if err != nil {
				errs = append(errs, fmt.Errorf("publish %s: %w", ch, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (f *RedisFeed) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	ps := f.client.Subscribe(ctx, channel)

	// Wait for the confirmation so no event published after Subscribe returns is missed.
	_, err := ps.Receive(ctx)
	if err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", channel, err)
	}

	sub := &redisSubscription{
		ps:     ps,
		events: make(chan Event),
	}

	go sub.pump(ctx)

	return sub, nil
}

type redisSubscription struct {
	ps     *redis.PubSub
	events chan Event
}

func (s *redisSubscription) Events() <-chan Event { return s.events }

func (s *redisSubscription) Close() error { return s.ps.Close() }

func (s *redisSubscription) pump(ctx context.Context) {
	defer close(s.events)

	msgs := s.ps.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			var e Event

			err := json.Unmarshal([]byte(msg.Payload), &e)
			if err != nil {
				slog.Warn("drop malformed feed event", "channel", msg.Channel, "error", err)
				continue
			}

			select {
			case s.events <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}
