package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

type Config struct {
	ServerPort string
	LogLevel   logrus.Level

	CapacityPerHour int
	RestDay         time.Weekday
	Timezone        string

	DBUrl     string
	JWTSecret string

	Redis          RedisConfig
	IdempotencyTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	capacity, err := getEnvInt("CAPACITY_PER_HOUR", 3)
	if err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	restDay, err := ParseWeekday(getEnv("REST_DAY", "sunday"))
	if err != nil {
		return nil, err
	}

	tz := getEnv("RESTAURANT_TIMEZONE", timezone.DefaultTimezone)
	if !timezone.IsValid(tz) {
		return nil, errors.Wrapf(ErrInvalidTimezone, "%q", tz)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("IDEMPOTENCY_TTL", "24h"))
	if err != nil {
		return nil, errors.Wrap(err, "IDEMPOTENCY_TTL")
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        level,
		CapacityPerHour: capacity,
		RestDay:         restDay,
		Timezone:        tz,
		DBUrl:           os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		IdempotencyTTL: ttl,
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%s=%q", key, v)
	}
	return n, nil
}

// ParseWeekday aceita o nome em inglês ("sunday") ou o número (0 = domingo).
func ParseWeekday(v string) (time.Weekday, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == v {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidWeekday, "%q", v)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
