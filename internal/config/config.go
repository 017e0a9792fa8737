package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddress         = ":9090"
	defaultTimeout         = 30 * time.Second
	defaultCacheDB         = 0
	defaultBloomBitSize    = 10000000
	defaultAccessTTL       = 10 * time.Minute
	defaultRefreshTTL      = 20 * time.Minute
	defaultRateLimit       = 5
	defaultRateLimitWindow = 10 * time.Second
	defaultPurgeInterval   = time.Minute
)

type Database struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the go-sql-driver connection string. clientFoundRows makes
// UPDATE report matched rows, so an update that changes nothing is not
// mistaken for a missing row.
func (d Database) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	val.Add("clientFoundRows", "true")
	val.Add("charset", "utf8mb4")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", d.User, d.Pass, d.Host, d.Port, d.Name, val.Encode())
}

type Cache struct {
	Addr string
	Pass string
	DB   int
}

type Config struct {
	Address        string
	ContextTimeout time.Duration
	Database       Database
	Cache          Cache
	BloomBitSize   uint64

	JWTSecret  []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	SALogin    string
	SAPassword string

	RateLimit       int64
	RateLimitWindow time.Duration
	PurgeInterval   time.Duration
}

// Load reads the configuration from the environment, after merging a .env
// file when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, using the process environment")
	}

	cfg := Config{
		Address:        getEnv("SERVER_ADDRESS", defaultAddress),
		ContextTimeout: getDuration("CONTEXT_TIMEOUT", defaultTimeout),
		Database: Database{
			Host: getEnv("DATABASE_HOST", "localhost"),
			Port: getEnv("DATABASE_PORT", "3306"),
			User: getEnv("DATABASE_USER", "root"),
			Pass: os.Getenv("DATABASE_PASS"),
			Name: getEnv("DATABASE_NAME", "bloggers"),
		},
		Cache: Cache{
			Addr: getEnv("CACHE_HOST", "localhost") + ":" + getEnv("CACHE_PORT", "6379"),
			Pass: os.Getenv("CACHE_PASS"),
			DB:   int(getInt("CACHE_DB", defaultCacheDB)),
		},
		BloomBitSize:    uint64(getInt("BLOOM_FILTER_SIZE", defaultBloomBitSize)),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		AccessTTL:       getDuration("JWT_ACCESS_TTL", defaultAccessTTL),
		RefreshTTL:      getDuration("JWT_REFRESH_TTL", defaultRefreshTTL),
		SALogin:         getEnv("SA_LOGIN", "admin"),
		SAPassword:      os.Getenv("SA_PASSWORD"),
		RateLimit:       getInt("RATE_LIMIT_REQUESTS", defaultRateLimit),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", defaultRateLimitWindow),
		PurgeInterval:   getDuration("SESSION_PURGE_INTERVAL", defaultPurgeInterval),
	}

	if len(cfg.JWTSecret) == 0 {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.SAPassword == "" {
		return Config{}, fmt.Errorf("SA_PASSWORD is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		logrus.Warnf("failed to parse %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

// getDuration accepts Go durations ("15m") as well as plain seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	logrus.Warnf("failed to parse %s=%q, using default %s", key, v, fallback)
	return fallback
}
