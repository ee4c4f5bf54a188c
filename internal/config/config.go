// Package config reads runtime settings from the environment. Binaries import
// github.com/joho/godotenv/autoload so a local .env file is honoured.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/carcruz97/portfolio/internal/cv"
	"github.com/carcruz97/portfolio/internal/snake"
)

type Config struct {
	Port            string
	DBPath          string
	DefaultLanguage cv.Language

	AdminUsername     string
	AdminPassword     string // plain, development only
	AdminPasswordHash string // bcrypt, preferred
	JWTSecret         string

	Snake snake.Rules
}

// Load reads the environment, filling development defaults for anything unset.
func Load() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		DBPath:            getenv("DB_PATH", "portfolio.db"),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		Snake:             snake.DefaultRules(),
	}

	lang, ok := cv.ParseLanguage(getenv("SITE_LANG", string(cv.English)))
	if !ok {
		return cfg, fmt.Errorf("SITE_LANG: unsupported language %q", os.Getenv("SITE_LANG"))
	}
	cfg.DefaultLanguage = lang

	var err error
	if cfg.Snake.BaseInterval, err = millis("SNAKE_BASE_INTERVAL_MS", cfg.Snake.BaseInterval); err != nil {
		return cfg, err
	}
	if cfg.Snake.IntervalStep, err = millis("SNAKE_INTERVAL_STEP_MS", cfg.Snake.IntervalStep); err != nil {
		return cfg, err
	}
	if err := cfg.Snake.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func millis(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return time.Duration(n) * time.Millisecond, nil
}
