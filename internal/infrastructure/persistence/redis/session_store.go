// Package redis implements the persisted session store on Redis. It is the
// durable analogue of browser local storage: three small keys (token, user,
// theme) that survive restarts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config holds Redis connection configuration.
type Config struct {
	// Host is the Redis server hostname.
	Host string

	// Port is the Redis server port.
	Port int

	// Password is the Redis authentication password (empty if no auth).
	Password string

	// DB is the Redis database number (0-15).
	DB int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads.
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes.
	WriteTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         6379,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Addr returns the Redis address in "host:port" format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ErrConnection is returned when the Redis connection fails.
var ErrConnection = errors.New("session store: connection failed")

// KeyPrefix namespaces the session keys.
const KeyPrefix = "campus:session:"

// SessionTTL matches the 7-day token expiry upstream: an entry older than
// its token is useless, so let Redis reap it.
const SessionTTL = 7 * 24 * time.Hour

// ══════════════════════════════════════════════════════════════════════════════
// SESSION STORE
// ══════════════════════════════════════════════════════════════════════════════

// SessionStore implements session.Store on Redis.
type SessionStore struct {
	client *goredis.Client
	config Config
}

// NewSessionStore creates a SessionStore and verifies the connection.
func NewSessionStore(cfg Config) (*SessionStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &SessionStore{client: client, config: cfg}, nil
}

// Set stores a value. Token and user entries expire with the upstream token;
// the theme preference never expires.
func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	ttl := SessionTTL
	if key == session.KeyTheme {
		ttl = 0
	}
	if err := s.client.Set(ctx, KeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("session store: set %s: %w", key, err)
	}
	return nil
}

// Get retrieves a value. Missing keys come back as shared.ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, KeyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", shared.WrapError("session", "Get", shared.ErrNotFound, key, err)
	}
	if err != nil {
		return "", fmt.Errorf("session store: get %s: %w", key, err)
	}
	return val, nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *SessionStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = KeyPrefix + k
	}
	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("session store: delete: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
