package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultClickQueue = "queue:clicks"

// Queue is a Redis-list FIFO buffer between the click ingestion hot path
// and the batch aggregator. Pushes go to the tail, pops come off the head;
// Redis serializes concurrent callers.
type Queue struct {
	rdb *redis.Client
	key string
}

func ConnectRedis(addr, password, key string) (*Queue, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if key == "" {
		key = DefaultClickQueue
	}
	return &Queue{rdb: rdb, key: key}, nil
}

func (q *Queue) PushTail(ctx context.Context, payload []byte) error {
	return q.rdb.RPush(ctx, q.key, payload).Err()
}

// PopHeadBatch removes up to n payloads from the head in one pipelined
// round trip. Fewer than n queued is not an error; an empty queue yields
// an empty slice.
func (q *Queue) PopHeadBatch(ctx context.Context, n int) ([][]byte, error) {
	pipe := q.rdb.Pipeline()
	cmds := make([]*redis.StringCmd, 0, n)
	for i := 0; i < n; i++ {
		cmds = append(cmds, pipe.LPop(ctx, q.key))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	out := make([][]byte, 0, n)
	for _, cmd := range cmds {
		payload, err := cmd.Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, payload)
	}
	return out, nil
}

func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, q.key).Result()
}

func (q *Queue) Close() error {
	return q.rdb.Close()
}
