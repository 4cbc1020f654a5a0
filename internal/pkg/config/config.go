package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Retry   RetryConfig
	Vendors VendorsConfig
	Feed    VesselFeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tracking_engine"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RetryConfig tunes the adapter execution core shared by every vendor
// connection.
type RetryConfig struct {
	MaxRetries int           `env:"MAX_RETRIES, default=3"`
	RetryDelay time.Duration `env:"RETRY_DELAY, default=1s"`
}

// VendorsConfig carries one base URL + API key pair per external vendor and
// the priority order the resolver walks them in.
type VendorsConfig struct {
	Priority []string `env:"VENDOR_PRIORITY, default=logitude,dpworld,tracktrace"`

	LogitudeURL string `env:"LOGITUDE_API_URL, default=https://api.logitude.com"`
	LogitudeKey string `env:"LOGITUDE_API_KEY"`
	DPWorldURL  string `env:"DPWORLD_API_URL,  default=https://api.dpworld.com"`
	DPWorldKey  string `env:"DPWORLD_API_KEY"`
	TrackingURL string `env:"TRACKING_API_URL, default=https://api.tracking.com"`
	TrackingKey string `env:"TRACKING_API_KEY"`
}

// VesselFeedConfig configures the live AIS feed. An empty APIKey switches
// vessel tracking to the position simulator; that is the supported no-key
// mode, not an error.
type VesselFeedConfig struct {
	APIKey  string `env:"VESSELFEED_API_KEY"`
	BaseURL string `env:"VESSELFEED_API_URL, default=https://api.vesselfeed.io"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
