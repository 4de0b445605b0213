package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable read by Load.
const EnvPrefix = "CONCEPTSORT_"

// Config holds runtime settings for the quiz.
type Config struct {
	// Sources are activity references: file paths, http(s) URLs or
	// llm:<topic>.
	Sources []string `env:"SOURCES" envSeparator:","`

	// Quiz is a YAML manifest listing sources; it is used when Sources
	// is empty.
	Quiz string `env:"QUIZ"`

	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LoadTimeout bounds the initial load. Zero waits indefinitely.
	LoadTimeout time.Duration `env:"LOAD_TIMEOUT" envDefault:"0s"`

	// ShuffleSeed makes item order reproducible. Zero shuffles randomly.
	ShuffleSeed uint64 `env:"SHUFFLE_SEED" envDefault:"0"`

	// ConceptsPerGroup sizes generated activities.
	ConceptsPerGroup int `env:"CONCEPTS_PER_GROUP" envDefault:"5"`
}

// Load parses CONCEPTSORT_ environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.LoadTimeout < 0 {
		return nil, fmt.Errorf("parse config: %sLOAD_TIMEOUT must not be negative", EnvPrefix)
	}
	return cfg, nil
}

// LoadDotEnv loads each existing file into the process environment.
// Variables already set win over file values; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
