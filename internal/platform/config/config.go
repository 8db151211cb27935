package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	// AdminKeyHash is the bcrypt hash of the shared admin key. Empty disables
	// the admin endpoints entirely.
	AdminKeyHash string

	Flags    Flags
	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
}

// Flags configures the one-shot feature flag initialization.
type Flags struct {
	// Source selects the provider: "http", "redis", or "" for defaults only.
	Source string
	// URL of the flag document for the http provider.
	URL string
	// Key of the flag hash for the redis provider.
	Key string
	// InitTimeout bounds the single startup fetch. On expiry the compiled-in
	// defaults are kept for the life of the process.
	InitTimeout time.Duration
}

// RedisConfig captures Redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig captures the store DSN. Empty means in-memory stores.
type PostgresConfig struct {
	DSN string
}

// KafkaConfig captures the audit broker list. Empty means in-memory audit.
type KafkaConfig struct {
	Brokers []string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FILINGS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "filings-gateway"
	}
	jwtAudience := os.Getenv("JWT_AUDIENCE")
	if jwtAudience == "" {
		jwtAudience = "business-registry"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		JWTIssuer:     jwtIssuer,
		JWTAudience:   jwtAudience,
		AdminKeyHash:  os.Getenv("ADMIN_KEY_HASH"),
		Flags: Flags{
			Source:      os.Getenv("FLAG_SOURCE"),
			URL:         os.Getenv("FLAG_PROVIDER_URL"),
			Key:         envOr("FLAG_REDIS_KEY", "filings:flags"),
			InitTimeout: envDuration("FLAG_INIT_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
		},
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(name string, fallback time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
