package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/pricing/pkg/metrics"
	"github.com/fastygo/pricing/usecase"
)

var errStaleGeneration = errors.New("metadata cache generation moved")

type metadataCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewMetadataCache creates a Redis-backed metadata cache.
func NewMetadataCache(client *redislib.Client, ttl time.Duration) usecase.MetadataCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &metadataCache{
		client: client,
		prefix: "metadata:",
		ttl:    ttl,
	}
}

func (c *metadataCache) Get(ctx context.Context, kind usecase.MetadataKind) ([]string, bool, error) {
	result, err := c.client.Get(ctx, c.key(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, false, nil
		}
		metrics.RecordCacheError("get")
		return nil, false, fmt.Errorf("get %s from cache: %w", kind, err)
	}

	var values []string
	if err := json.Unmarshal(result, &values); err != nil {
		metrics.RecordCacheError("decode")
		return nil, false, fmt.Errorf("decode cached %s: %w", kind, err)
	}
	return values, true, nil
}

// Generation returns the current cache generation. A fresh cache is at 0.
func (c *metadataCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, c.generationKey()).Int64()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return 0, nil
		}
		metrics.RecordCacheError("generation")
		return 0, fmt.Errorf("read metadata cache generation: %w", err)
	}
	return generation, nil
}

// Set stores values only while the cache is still at generation. The
// generation key is watched, so an Invalidate racing the write aborts it.
func (c *metadataCache) Set(ctx context.Context, kind usecase.MetadataKind, generation int64, values []string) (bool, error) {
	if values == nil {
		values = []string{}
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return false, err
	}

	err = c.client.Watch(ctx, func(tx *redislib.Tx) error {
		current, err := tx.Get(ctx, c.generationKey()).Int64()
		if err != nil && !errors.Is(err, redislib.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redislib.Pipeliner) error {
			pipe.Set(ctx, c.key(kind), payload, c.ttl)
			return nil
		})
		return err
	}, c.generationKey())

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStaleGeneration), errors.Is(err, redislib.TxFailedErr):
		metrics.RecordCacheStaleWrite(string(kind))
		return false, nil
	default:
		metrics.RecordCacheError("set")
		return false, fmt.Errorf("set %s in cache: %w", kind, err)
	}
}

// Invalidate advances the generation and drops every cached list in one transaction.
func (c *metadataCache) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(usecase.MetadataKinds()))
	for _, kind := range usecase.MetadataKinds() {
		keys = append(keys, c.key(kind))
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redislib.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey())
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		metrics.RecordCacheError("del")
		return fmt.Errorf("invalidate metadata cache: %w", err)
	}
	return nil
}

func (c *metadataCache) generationKey() string {
	return c.prefix + "generation"
}

func (c *metadataCache) key(kind usecase.MetadataKind) string {
	return fmt.Sprintf("%s%s", c.prefix, kind)
}
