package config

import (
	"errors"
	"testing"
	"time"

	"github.com/carcruz97/portfolio/internal/cv"
	"github.com/carcruz97/portfolio/internal/snake"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "SITE_LANG", "ADMIN_USERNAME", "SNAKE_BASE_INTERVAL_MS", "SNAKE_INTERVAL_STEP_MS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.DBPath != "portfolio.db" || cfg.AdminUsername != "admin" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.DefaultLanguage != cv.English {
		t.Errorf("language = %q", cfg.DefaultLanguage)
	}
	if cfg.Snake != snake.DefaultRules() {
		t.Errorf("rules = %+v", cfg.Snake)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SITE_LANG", "es")
	t.Setenv("SNAKE_BASE_INTERVAL_MS", "300")
	t.Setenv("SNAKE_INTERVAL_STEP_MS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLanguage != cv.Spanish {
		t.Errorf("language = %q", cfg.DefaultLanguage)
	}
	if cfg.Snake.BaseInterval != 300*time.Millisecond || cfg.Snake.Interval(3) != 200*time.Millisecond {
		t.Errorf("rules = %+v", cfg.Snake)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SNAKE_BASE_INTERVAL_MS", "100")
	t.Setenv("SNAKE_INTERVAL_STEP_MS", "100")
	if _, err := Load(); !errors.Is(err, snake.ErrInvalidRules) {
		t.Errorf("err = %v, want ErrInvalidRules", err)
	}

	t.Setenv("SNAKE_BASE_INTERVAL_MS", "fast")
	if _, err := Load(); err == nil {
		t.Error("non-numeric interval accepted")
	}

	t.Setenv("SNAKE_BASE_INTERVAL_MS", "")
	t.Setenv("SNAKE_INTERVAL_STEP_MS", "")
	t.Setenv("SITE_LANG", "fr")
	if _, err := Load(); err == nil {
		t.Error("unsupported language accepted")
	}
}
