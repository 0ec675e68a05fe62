package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flydreamair/internal/domain"
)

// ResultsCache caches availability results in Redis. It is a read-through
// accelerator only; the fixture schedule remains the source of truth.
type ResultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// ResultsCacheTTL is how long cached availability stays valid. The fixture
// schedule never changes at runtime, so the TTL only bounds memory.
const ResultsCacheTTL = 5 * time.Minute

const resultsCachePrefix = "cache:results:"

// NewResultsCache creates a ResultsCache with the default TTL.
func NewResultsCache(client *redis.Client) *ResultsCache {
	return &ResultsCache{client: client, ttl: ResultsCacheTTL}
}

// GetResults retrieves cached availability for a route and date. A cache
// miss returns (nil, nil).
func (c *ResultsCache) GetResults(ctx context.Context, origin, destination string, date time.Time) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, resultsKey(origin, destination, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// SetResults stores availability for a route and date.
func (c *ResultsCache) SetResults(ctx context.Context, origin, destination string, date time.Time, flights []domain.Flight) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultsKey(origin, destination, date), data, c.ttl).Err()
}

func resultsKey(origin, destination string, date time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", resultsCachePrefix, origin, destination, date.Format("2006-01-02"))
}
