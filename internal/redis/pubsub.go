package redisx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogPubSub broadcasts catalog mutations so every instance can drop its
// cached event entries.
type CatalogPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewCatalogPubSub(rdb *redis.Client) *CatalogPubSub {
	return &CatalogPubSub{
		rdb:     rdb,
		channel: ChannelCatalogChanged(),
	}
}

type catalogChangedMsg struct {
	Type    string `json:"type"`
	Slug    string `json:"slug"`
	EventID string `json:"event_id"`
	TsUnix  int64  `json:"ts_unix"`
}

func (p *CatalogPubSub) PublishCatalogChanged(ctx context.Context, slug, eventID string) error {
	msg := catalogChangedMsg{
		Type:    "catalog_changed",
		Slug:    slug,
		EventID: eventID,
		TsUnix:  time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *CatalogPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, slug, eventID string)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev catalogChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil &&
				ev.Slug != "" {
				handler(ctx, ev.Slug, ev.EventID)
			}
		}
	}
}
