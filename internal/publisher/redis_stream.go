package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DashboardStream receives one entry per dashboard run
const DashboardStream = "dashboard.requests"

// DashboardEvent records that a dashboard was built
type DashboardEvent struct {
	RequestID string    `json:"request_id"`
	Surface   string    `json:"surface"`
	Players   []int     `json:"player_ids"`
	Seasons   []string  `json:"seasons"`
	Games     int       `json:"games"`
	Warnings  int       `json:"warnings"`
	At        time.Time `json:"at"`
}

// RedisPublisher appends dashboard events to a Redis stream
type RedisPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisPublisher connects to redisURL and verifies the connection
func NewRedisPublisher(ctx context.Context, redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return NewRedisStreamPublisher(client), nil
}

// NewRedisStreamPublisher wraps an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		stream: DashboardStream,
		maxLen: 10000,
	}
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// PublishDashboard appends ev to the dashboard stream, trimming it to
// roughly maxLen entries
func (rp *RedisPublisher) PublishDashboard(ctx context.Context, ev DashboardEvent) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding dashboard event: %w", err)
	}

	err = rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: rp.stream,
		MaxLen: rp.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"request_id": ev.RequestID,
			"data":       string(data),
			"timestamp":  ev.At.Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publishing dashboard event: %w", err)
	}
	return nil
}
