package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"io/fs"
	"time"
)

type Config struct {
	PostgresURL string `envconfig:"POSTGRES_URL" required:"true"`
	RedisAddr   string `envconfig:"REDIS_ADDR" required:"true"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// zero disables expiry of pending bookings
	PendingBookingTTL   time.Duration `envconfig:"PENDING_BOOKING_TTL" default:"0"`
	ExpirySweepInterval time.Duration `envconfig:"EXPIRY_SWEEP_INTERVAL" default:"1m"`

	JaegerEndpoint string `envconfig:"JAEGER_ENDPOINT"`
}

// Load reads the environment, after applying a .env file from the working
// directory if there is one. Variables already set take precedence.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var c Config
	err = envconfig.Process("", &c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env: %w", err)
	}

	if c.ExpirySweepInterval <= 0 {
		return Config{}, errors.New("EXPIRY_SWEEP_INTERVAL must be positive")
	}

	return c, nil
}

func (c Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
