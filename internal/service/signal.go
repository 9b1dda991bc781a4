package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	lucidfeed "github.com/lucidfeed-wq/Lucid-Feed-sub003"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/scoring"
)

// SignalService fans engagement updates out to realtime subscribers over
// redis pub/sub.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) PublishEngagement(ctx context.Context, item domain.Item) error {
	event := lucidfeed.Event{
		Type:       "engagement",
		ItemID:     item.ID,
		DigestID:   item.DigestID,
		Engagement: item.Engagement,
		Magnitude:  scoring.AggregateEngagement(item.Engagement),
		Timestamp:  time.Now().UTC(),
	}

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, lucidfeed.EngagementChannel, jsonstr).Err()
	if err != nil {
		return errors.Wrap(err, "failed to publish engagement event")
	}
	return nil
}

// Realtime pumps engagement events to output, filtered by the item and
// digest ids received on input. It returns when ctx is cancelled.
func (s *SignalService) Realtime(ctx context.Context, input <-chan []string, output chan<- lucidfeed.Event) {
	pubsub := s.rdb.Subscribe(ctx, lucidfeed.EngagementChannel)
	defer pubsub.Close()

	filters := map[string]struct{}{}
	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case ids, ok := <-input:
			if !ok {
				return
			}
			filters = map[string]struct{}{}
			for _, id := range ids {
				filters[strings.TrimSpace(id)] = struct{}{}
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var event lucidfeed.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.ErrorContext(
					ctx, "Failed to decode engagement event",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}

			if len(filters) > 0 {
				_, itemMatch := filters[event.ItemID]
				_, digestMatch := filters[event.DigestID]
				if !itemMatch && !digestMatch {
					continue
				}
			}

			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
