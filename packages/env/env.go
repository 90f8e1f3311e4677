package env

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	BungieAPIKey  string
	BungieURLBase string
	PGCRURLBase   string
	BungieDebug   bool
	BungieTimeout time.Duration

	RabbitMQUser     string
	RabbitMQPassword string
	RabbitMQHost     string
	RabbitMQPort     string

	AlertsWebhookURL string
	MetricsPort      int

	once sync.Once
)

// Load reads .env (if present) and then the process environment. It is safe
// to call more than once; only the first call does any work.
func Load() {
	once.Do(load)
}

func load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	BungieAPIKey = os.Getenv("BUNGIE_API_KEY")
	BungieURLBase = getOr("BUNGIE_URL_BASE", "https://www.bungie.net")
	PGCRURLBase = getOr("PGCR_URL_BASE", "https://stats.bungie.net")
	BungieDebug = getBool("BUNGIE_DEBUG")
	BungieTimeout = getDuration("BUNGIE_TIMEOUT", 15*time.Second)

	RabbitMQUser = os.Getenv("RABBITMQ_USER")
	RabbitMQPassword = os.Getenv("RABBITMQ_PASSWORD")
	RabbitMQHost = getOr("RABBITMQ_HOST", "localhost")
	RabbitMQPort = getOr("RABBITMQ_PORT", "5672")

	AlertsWebhookURL = os.Getenv("ALERTS_WEBHOOK_URL")
	MetricsPort = getInt("METRICS_PORT", 8083)
}

func getOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getDuration accepts Go durations ("30s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
	return fallback
}
