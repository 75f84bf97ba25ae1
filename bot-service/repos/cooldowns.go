package repos

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// CooldownGate rate limits invitation sends per user and channel with
// expiring Redis keys.
//
// Redis failures never block a user. IsBlocked fails open and reports "not
// blocked" when the cache is unreachable, and Arm only logs its failures, so
// an outage degrades to "no slow mode" instead of locking everyone out.
type CooldownGate struct {
	redis *redis.Client
}

func NewCooldownGate(client *redis.Client) *CooldownGate {
	return &CooldownGate{redis: client}
}

func cooldownKey(userId, channelId string) string {
	return userId + "-" + channelId
}

func (c *CooldownGate) IsBlocked(ctx context.Context, userId, channelId string) bool {
	n, err := c.redis.Exists(ctx, cooldownKey(userId, channelId)).Result()
	if err != nil {
		log.Warn().Err(err).Str("user", userId).Str("channel", channelId).Msg("Cooldown check failed, failing open")
		return false
	}

	return n > 0
}

func (c *CooldownGate) Arm(ctx context.Context, userId, channelId string, d time.Duration) {
	if d <= 0 {
		return
	}

	if err := c.redis.Set(ctx, cooldownKey(userId, channelId), 1, d).Err(); err != nil {
		log.Warn().Err(err).Str("user", userId).Str("channel", channelId).Msg("Could not arm cooldown")
	}
}
