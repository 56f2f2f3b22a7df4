package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/indrishabhtech/ap/internal/probe"

	goredis "github.com/redis/go-redis/v9"
)

// ProbeCacheConfig contains configuration for probe-result caching.
type ProbeCacheConfig struct {
	TTL time.Duration
}

// DefaultProbeCacheConfig returns sensible defaults.
func DefaultProbeCacheConfig() ProbeCacheConfig {
	return ProbeCacheConfig{TTL: 5 * time.Minute}
}

// ProbeCache holds short-lived probe results so repeated registrations of
// the same URL skip the network round trips. Probe results are advisory,
// so staleness within the TTL is acceptable.
type ProbeCache struct {
	client *goredis.Client
	config ProbeCacheConfig
}

func NewProbeCache(client *goredis.Client, config ProbeCacheConfig) *ProbeCache {
	return &ProbeCache{client: client, config: config}
}

// Get returns the cached result for a URL, or nil on a miss.
func (c *ProbeCache) Get(ctx context.Context, rawURL string) (*probe.Result, error) {
	data, err := c.client.Get(ctx, probeKey(rawURL)).Result()
	if err == goredis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}

	var res probe.Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Set stores a probe result with the configured TTL.
func (c *ProbeCache) Set(ctx context.Context, rawURL string, res probe.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, probeKey(rawURL), data, c.config.TTL).Err()
}

func probeKey(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return "probe:" + hex.EncodeToString(sum[:])
}
