package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends understood by database.Open
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config represents the configuration for the application
type Config struct {
	// Which key-value backend holds words, stats, settings and errors
	Store string
	// Path to the SQLite file when Store is sqlite
	DBPath string
	// Postgres connection string when Store is postgres
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// OpenAI-compatible endpoint of the local model server
	AIBaseURL     string
	AIModel       string
	AIAPIKey      string
	AIMaxTokens   int
	AITemperature float32

	TelegramToken  string
	TelegramChatID int64

	// Reminders are only sent between these hours (inclusive, local time)
	NotificationStartHour int
	NotificationEndHour   int

	DefaultDailyGoal int
	LogMode          string
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	dbPath := filepath.Join("data", "wordlearner.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".wordlearner", "wordlearner.db")
	}
	return &Config{
		Store:                 StoreSQLite,
		DBPath:                dbPath,
		RedisAddr:             "localhost:6379",
		AIBaseURL:             "http://localhost:11434/v1",
		AIModel:               "gemma3:1b",
		AIMaxTokens:           256,
		AITemperature:         0.7,
		NotificationStartHour: 8,
		NotificationEndHour:   22,
		DefaultDailyGoal:      5,
		LogMode:               "dev",
	}
}

// Load reads .env (when present) and the environment on top of the defaults
func Load() (*Config, error) {
	// A missing .env is fine, values may come from the real environment
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.Store = strings.ToLower(String("WORDLEARNER_STORE", cfg.Store))
	cfg.DBPath = String("WORDLEARNER_DB_PATH", cfg.DBPath)
	cfg.DatabaseURL = String("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = String("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = String("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = Int("REDIS_DB", cfg.RedisDB)
	cfg.AIBaseURL = String("AI_BASE_URL", cfg.AIBaseURL)
	cfg.AIModel = String("AI_MODEL", cfg.AIModel)
	cfg.AIAPIKey = String("AI_API_KEY", cfg.AIAPIKey)
	cfg.AIMaxTokens = Int("AI_MAX_TOKENS", cfg.AIMaxTokens)
	cfg.AITemperature = float32(Float("AI_TEMPERATURE", float64(cfg.AITemperature)))
	cfg.TelegramToken = String("TELEGRAM_BOT_TOKEN", cfg.TelegramToken)
	cfg.TelegramChatID = Int64("TELEGRAM_CHAT_ID", cfg.TelegramChatID)
	cfg.NotificationStartHour = Int("NOTIFICATION_START_HOUR", cfg.NotificationStartHour)
	cfg.NotificationEndHour = Int("NOTIFICATION_END_HOUR", cfg.NotificationEndHour)
	cfg.DefaultDailyGoal = Int("DEFAULT_DAILY_GOAL", cfg.DefaultDailyGoal)
	cfg.LogMode = String("LOG_MODE", cfg.LogMode)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("WORDLEARNER_DB_PATH must not be empty")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store %q (want sqlite, postgres or redis)", c.Store)
	}
	if c.NotificationStartHour < 0 || c.NotificationStartHour > 23 ||
		c.NotificationEndHour < 0 || c.NotificationEndHour > 23 {
		return fmt.Errorf("notification hours must be within 0-23")
	}
	if c.NotificationStartHour > c.NotificationEndHour {
		return fmt.Errorf("NOTIFICATION_START_HOUR (%d) is after NOTIFICATION_END_HOUR (%d)",
			c.NotificationStartHour, c.NotificationEndHour)
	}
	return nil
}

func String(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func Int(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func Int64(name string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return i
}

func Float(name string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
