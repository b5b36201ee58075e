package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ascend/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// Service issues and revokes login session tokens kept in redis.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login opens a session for an already authenticated user and returns its token.
func (as *Service) Login(ctx context.Context, userID int, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, sessionValue(userID, createdAt), as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("index session: %w", err)
	}

	return token, nil
}

// Logout drops the session. The returned flag is false if the token was unknown.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	deleted, err := as.redisClient.Del(ctx, sessionKey).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all indexed sessions and drop those that are
// expired or already evicted by redis.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := parseSessionValue(val)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}

		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Debugf("auth service, scan and clean removed %d sessions", len(toRemove))
}
