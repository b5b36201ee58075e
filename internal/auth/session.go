package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "ascend-session||"
	tokensSetKey     = "ascend-sessions"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
)

// sessionValue is stored under the token key as "<userID>:<createdAtUnix>".
func sessionValue(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d:%d", userID, createdAt.Unix())
}

func parseSessionValue(val string) (userID int, createdAt time.Time, err error) {
	idPart, tsPart, ok := strings.Cut(val, ":")
	if !ok {
		return 0, time.Time{}, fmt.Errorf("malformed session value: %q", val)
	}
	userID, err = strconv.Atoi(idPart)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("parse session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
