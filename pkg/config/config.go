package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

const defaultPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	path string
}

// New loads the env file named by CONFIG_PATH once. A missing file is not an error:
// values already present in the process environment are used as is.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultPath
		}
		err := godotenv.Load(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Fatal("loading envs error: ", err)
			}
			slog.Warn("env file not found, using process environment", slog.String("path", path))
		}
		instance = &Config{path: path}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in config, using default", slog.String("key", key), slog.Int("default", def))
		return def
	}
	return n
}

func (c *Config) GetFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in config, using default", slog.String("key", key), slog.Float64("default", def))
		return def
	}
	return f
}

// LogLevel parses LOG_LEVEL (debug, info, warn, error). Unknown values mean info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.GetStringOr("LOG_LEVEL", "info"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
