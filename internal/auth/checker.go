package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves a session token to the logged user id.
type Checker interface {
	LoggedUser(ctx context.Context, token string) (int, error)
}

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) LoggedUser(ctx context.Context, token string) (int, error) {
	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotLoggedIn
	}
	if err != nil {
		return 0, err
	}

	userID, createdAt, err := parseSessionValue(val)
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > c.ttl {
		return 0, ErrSessionExpired
	}

	return userID, nil
}

// LoginTestChecker is an in-memory Checker for dev and tests.
type LoginTestChecker struct {
	mutex          sync.RWMutex
	LoggedSessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int{},
	}
}

func (c *LoginTestChecker) Add(token string, userID int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.LoggedSessions[token] = userID
}

func (c *LoginTestChecker) LoggedUser(_ context.Context, token string) (int, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, ErrNotLoggedIn
	}
	return userID, nil
}
