package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultUpdateRepo = "Fepozopo/rgbedit"

// Config collects the environment-driven settings shared by every subcommand.
type Config struct {
	LogLevel       logrus.Level
	JPEGQuality    int
	Preview        bool
	PreviewBackend string // "", "kitty", "inline", "chafa"
	UpdateRepo     string // owner/name on GitHub
}

// LoadConfig reads an optional .env from the working directory and then the
// process environment. Missing or malformed values fall back to defaults.
func LoadConfig() Config {
	// .env is optional
	_ = godotenv.Load()
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) Config {
	cfg := Config{
		LogLevel:    logrus.InfoLevel,
		JPEGQuality: 92,
		Preview:     true,
		UpdateRepo:  defaultUpdateRepo,
	}
	if v := getenv("RGBEDIT_LOG_LEVEL"); v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if truthy(getenv("RGBEDIT_DEBUG")) {
		cfg.LogLevel = logrus.DebugLevel
	}
	if v := getenv("RGBEDIT_JPEG_QUALITY"); v != "" {
		if q, err := strconv.Atoi(v); err == nil && q >= 1 && q <= 100 {
			cfg.JPEGQuality = q
		}
	}
	if v := getenv("RGBEDIT_PREVIEW"); v != "" {
		cfg.Preview = truthy(v)
	}
	cfg.PreviewBackend = strings.ToLower(strings.TrimSpace(getenv("PREVIEW_BACKEND")))
	if v := strings.TrimSpace(getenv("RGBEDIT_UPDATE_REPO")); v != "" {
		cfg.UpdateRepo = v
	}
	return cfg
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool { return c.LogLevel >= logrus.DebugLevel }

func truthy(s string) bool {
	v, err := parseBoolLikeToString(s)
	return err == nil && v == "true"
}
