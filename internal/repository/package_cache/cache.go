// Package package_cache keeps recent package lookups in redis, keyed by tracking
// number, with a secondary id key so updates can evict by package id and a
// generation counter that fences write-backs racing an eviction.
package package_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"trackit/internal/entities"
	"trackit/internal/service/shipment"
)

const (
	DefaultTTL = 30 * time.Second

	// generationTTL outlives any gateway lookup that could race an invalidation.
	generationTTL = 10 * time.Minute

	trackingKeyPrefix   = "trackit:package:tracking:"
	idKeyPrefix         = "trackit:package:id:"
	generationKeyPrefix = "trackit:package:generation:"
)

// KEYS: generation, tracking, id. ARGV: expected generation, payload, ttl ms, id value.
var setIfCurrent = redis.NewScript(`
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
if ARGV[4] ~= "" then
	redis.call("SET", KEYS[3], ARGV[4], "PX", ARGV[3])
end
return 1
`)

type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	data, err := c.client.Get(ctx, trackingKey(trackingNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shipment.ErrCacheMiss
		}
		return nil, fmt.Errorf("unexpected package cache get error: %w", err)
	}

	var cached packageCache
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("decode cached package %s: %w", trackingNumber, err)
	}
	return toDomain(cached), nil
}

// Generation is read before a gateway lookup and handed back to Set.
func (c *Cache) Generation(ctx context.Context, trackingNumber string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(trackingNumber)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected package cache generation error: %w", err)
	}
	return gen, nil
}

// Set stores pkg unless the package was invalidated after generation was read.
func (c *Cache) Set(ctx context.Context, pkg entities.Package, generation int64) error {
	data, err := json.Marshal(fromDomain(pkg))
	if err != nil {
		return fmt.Errorf("encode package %s: %w", pkg.TrackingNumber, err)
	}

	var idValue string
	if pkg.ID != "" {
		idValue = pkg.TrackingNumber
	}

	err = setIfCurrent.Run(ctx, c.client,
		[]string{generationKey(pkg.TrackingNumber), trackingKey(pkg.TrackingNumber), idKey(pkg.ID)},
		strconv.FormatInt(generation, 10), data, c.ttl.Milliseconds(), idValue,
	).Err()
	if err != nil {
		return fmt.Errorf("unexpected package cache set error: %w", err)
	}
	return nil
}

// Invalidate evicts the package and bumps its generation so in-flight lookups do not write it back.
// trackingNumber may be empty; it is then resolved through the id key.
func (c *Cache) Invalidate(ctx context.Context, packageID, trackingNumber string) error {
	if trackingNumber == "" {
		tn, err := c.client.Get(ctx, idKey(packageID)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return fmt.Errorf("unexpected package cache lookup error: %w", err)
		}
		trackingNumber = tn
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(trackingNumber))
		pipe.Expire(ctx, generationKey(trackingNumber), generationTTL)
		pipe.Del(ctx, idKey(packageID), trackingKey(trackingNumber))
		return nil
	})
	if err != nil {
		return fmt.Errorf("unexpected package cache invalidate error: %w", err)
	}
	return nil
}

func trackingKey(trackingNumber string) string {
	return trackingKeyPrefix + trackingNumber
}

func idKey(id string) string {
	return idKeyPrefix + id
}

func generationKey(trackingNumber string) string {
	return generationKeyPrefix + trackingNumber
}
