package flags

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisProvider reads the flag set from a Redis hash. Each hash field holds a
// JSON-encoded value, so lists and strings round-trip without a convention
// like comma-splitting.
type RedisProvider struct {
	client redis.Cmdable
	key    string
}

// NewRedisProvider creates a provider reading the given hash key.
func NewRedisProvider(client redis.Cmdable, key string) *RedisProvider {
	return &RedisProvider{client: client, key: key}
}

func (p *RedisProvider) Fetch(ctx context.Context) (Set, error) {
	fields, err := p.client.HGetAll(ctx, p.key).Result()
	if err != nil {
		return nil, fmt.Errorf("read flag hash %s: %w", p.key, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("flag hash %s is empty", p.key)
	}

	set := make(Set, len(fields))
	for name, raw := range fields {
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("decode flag %s: %w", name, err)
		}
		set[name] = value
	}
	return set, nil
}
