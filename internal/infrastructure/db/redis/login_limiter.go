package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = 15 * time.Minute
)

// LimiterConfig bounds failed logins per email. Zero values fall back to the
// package defaults.
type LimiterConfig struct {
	MaxAttempts int64
	Window      time.Duration
}

// LoginLimiter throttles repeated failed logins per email using a fixed
// window counter. Key format: helpdesk:login_attempts:<email>
//
// The limiter fails open: when Redis is unreachable, logins proceed and the
// outage is logged. Account lockout must never depend on cache availability.
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	log    zerolog.Logger
}

func NewLoginLimiter(client *redis.Client, cfg LimiterConfig, log zerolog.Logger) *LoginLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	return &LoginLimiter{client: client, max: cfg.MaxAttempts, window: cfg.Window, log: log}
}

// TooManyAttempts reports whether the email has exhausted its failed-login
// budget for the current window.
func (l *LoginLimiter) TooManyAttempts(ctx context.Context, email string) bool {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if err != redis.Nil {
			l.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		}
		return false
	}
	return n >= l.max
}

// RecordFailure increments the failure counter. The window TTL is set on the
// first failure and left alone afterwards, so the counter expires a fixed
// interval after the first failed attempt.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	key := l.key(email)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn().Err(err).Msg("login limiter failed to record attempt")
		return
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Msg("login limiter failed to set window TTL")
		}
	}
}

func (l *LoginLimiter) key(email string) string {
	return keyPrefix + "login_attempts:" + strings.ToLower(email)
}
