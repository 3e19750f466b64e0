package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

const roleCacheTTL = 5 * time.Minute

// RoleCache caches principal role/status pairs in Redis with a short TTL.
// Key format: role:<email>, value format: <role>|<status>.
// The store stays authoritative: entries are invalidated on every role or
// status mutation and expire on their own otherwise.
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get returns the cached role/status for email. ok is false on a miss.
func (c *RoleCache) Get(ctx context.Context, email string) (domain.Role, domain.AccountStatus, bool, error) {
	val, err := c.client.Get(ctx, c.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", false, nil
		}
		return "", "", false, fmt.Errorf("role cache get: %w", err)
	}

	role, status, found := strings.Cut(val, "|")
	if !found {
		// stale or corrupt entry, treat as a miss
		return "", "", false, nil
	}
	return domain.Role(role), domain.AccountStatus(status), true, nil
}

// Set records the role/status pair (expires after roleCacheTTL).
func (c *RoleCache) Set(ctx context.Context, email string, role domain.Role, status domain.AccountStatus) error {
	val := string(role) + "|" + string(status)
	return c.client.Set(ctx, c.key(email), val, roleCacheTTL).Err()
}

// Invalidate drops the cached entry for email.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *RoleCache) key(email string) string {
	return "role:" + email
}
