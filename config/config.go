package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPHost string
	HTTPPort string
	GRPCHost string
	GRPCPort string

	MySQLDSN     string
	MySQLMaxOpen int
	MySQLMaxIdle int
	MySQLMaxLife time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// LockStore is "mysql" or "memory". The memory store is only safe with a single instance.
	LockStore string
	// MemoryRetention is how long the memory store keeps released locks.
	MemoryRetention time.Duration
	// EventSink is "redis", "log" or "none".
	EventSink string

	ReaperInterval time.Duration
	// ReaperMutex is "redis", "mysql" or "none".
	ReaperMutex string

	ExclusiveMaxTTL      time.Duration
	AdvisoryDefaultTTL   time.Duration
	AdvisoryMaxTTL       time.Duration
	AdvisorySlidingLease bool
	AdvisoryMaxPerType   int

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	p := &parser{}
	cfg := &Config{
		HTTPHost: getEnv("HTTP_HOST", "0.0.0.0"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		GRPCHost: getEnv("GRPC_HOST", "0.0.0.0"),
		GRPCPort: getEnv("GRPC_PORT", "9090"),

		MySQLDSN:     getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/doclocks?parseTime=true&loc=UTC"),
		MySQLMaxOpen: p.int("MYSQL_MAX_OPEN", 10),
		MySQLMaxIdle: p.int("MYSQL_MAX_IDLE", 5),
		MySQLMaxLife: p.duration("MYSQL_MAX_LIFETIME", 30*time.Minute),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       p.int("REDIS_DB", 0),

		LockStore:       p.oneOf("LOCK_STORE", "mysql", "mysql", "memory"),
		MemoryRetention: p.duration("MEMORY_RETENTION", 10*time.Minute),
		EventSink: p.oneOf("EVENT_SINK", "redis", "redis", "log", "none"),

		ReaperInterval: p.duration("REAPER_INTERVAL", 10*time.Second),
		ReaperMutex:    p.oneOf("REAPER_MUTEX", "redis", "redis", "mysql", "none"),

		ExclusiveMaxTTL:      p.duration("EXCLUSIVE_MAX_TTL", 0),
		AdvisoryDefaultTTL:   p.duration("ADVISORY_DEFAULT_TTL", 5*time.Minute),
		AdvisoryMaxTTL:       p.duration("ADVISORY_MAX_TTL", time.Hour),
		AdvisorySlidingLease: p.bool("ADVISORY_SLIDING_LEASE", true),
		AdvisoryMaxPerType:   p.int("ADVISORY_MAX_PER_TYPE", 0),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: p.oneOf("LOG_FORMAT", "text", "text", "json"),
	}
	if p.err != nil {
		return nil, p.err
	}
	if cfg.ReaperInterval <= 0 {
		return nil, fmt.Errorf("REAPER_INTERVAL must be positive")
	}
	if cfg.AdvisoryMaxTTL > 0 && cfg.AdvisoryDefaultTTL > cfg.AdvisoryMaxTTL {
		return nil, fmt.Errorf("ADVISORY_DEFAULT_TTL must not exceed ADVISORY_MAX_TTL")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parser keeps the first malformed value it sees.
type parser struct {
	err error
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}

func (p *parser) int(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return defaultValue
	}
	if v < 0 {
		p.fail(key, raw, fmt.Errorf("must not be negative"))
	}
	return v
}

func (p *parser) duration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return defaultValue
	}
	if v < 0 {
		p.fail(key, raw, fmt.Errorf("must not be negative"))
	}
	return v
}

func (p *parser) bool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return defaultValue
	}
	return v
}

func (p *parser) oneOf(key, defaultValue string, allowed ...string) string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if raw == "" {
		return defaultValue
	}
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	p.fail(key, raw, fmt.Errorf("must be one of %s", strings.Join(allowed, ", ")))
	return defaultValue
}
