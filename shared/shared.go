package shared

import (
	"context"
	"fmt"
	"hallbook/shared/cache"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	if len(parts) == 0 {
		return prefix
	}

	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, prefix)

	for _, part := range parts {
		segments = append(segments, fmt.Sprint(part))
	}

	return strings.Join(segments, ":")
}

// InvalidateCaches deletes every key. Failures are logged and never returned,
// a stale entry expires with its TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, keys ...string) {
	for _, key := range keys {
		if err := redisCache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("cacheKey", key).Msg("failed to invalidate cache")
		}
	}
}
